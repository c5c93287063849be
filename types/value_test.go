package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsTag(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		code TypeCode
	}{
		{"int", NewInt(42), TYPE_INT},
		{"float", NewFloat(3.14), TYPE_FLOAT},
		{"str", NewStr("hi"), TYPE_STR},
		{"bytes", NewStrBytes([]byte("hi")), TYPE_STR},
		{"bool", NewBool(true), TYPE_BOOL},
		{"nil", NewNil(), TYPE_NIL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.val.Type())
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewInt(0), "0"},
		{NewInt(math.MaxInt32), "2147483647"},
		{NewInt(math.MinInt32), "-2147483648"},
		{NewFloat(3.14), "3.140000"},
		{NewFloat(-0.5), "-0.500000"},
		{NewFloat(2), "2.000000"},
		{NewFloat(1e20), "100000000000000000000.000000"},
		{NewFloat(math.Inf(1)), "inf"},
		{NewFloat(math.Inf(-1)), "-inf"},
		{NewFloat(math.NaN()), "nan"},
		{NewStr("She said: \"Keep coding!\""), "She said: \"Keep coding!\""},
		{NewStr(""), ""},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewNil(), "nil"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.val.String())
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, NewInt(1).Equal(NewInt(1)))
	assert.False(t, NewInt(1).Equal(NewFloat(1)))
	assert.True(t, NewFloat(1.5).Equal(NewFloat(1.5)))
	assert.False(t, NewFloat(math.NaN()).Equal(NewFloat(math.NaN())))
	assert.True(t, NewStr("a").Equal(NewStr("a")))
	assert.False(t, NewStr("a").Equal(NewStr("A")))
	assert.True(t, NewBool(false).Equal(NewBool(false)))
	assert.True(t, NewNil().Equal(NewNil()))
	assert.False(t, NewNil().Equal(NewBool(false)))
	assert.False(t, NewNil().Equal(NewInt(0)))
	assert.False(t, NewInt(0).Equal(NewNil()))
}

func TestNewStrBytesCopies(t *testing.T) {
	buf := []byte("hello")
	s := NewStrBytes(buf)
	buf[0] = 'j'
	assert.Equal(t, "hello", s.Value())
	assert.Equal(t, 5, s.Len())
}

func TestPayloadAccessors(t *testing.T) {
	assert.Equal(t, int32(42), NewInt(42).Val())
	assert.Equal(t, 3.14, NewFloat(3.14).Val())
	assert.Equal(t, true, NewBool(true).Val())
	assert.True(t, NewFloat(math.NaN()).IsNaN())
	assert.True(t, NewFloat(math.Inf(-1)).IsInf())
}
