package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"miniscript/program"
	"miniscript/runtime"
	"miniscript/trace"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("miniscript", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML runtime config file (limits, tracing)")
	maxConcat := fs.Int("max-string-concat", 0, "Largest string concat may produce, 0 for no limit (overrides config)")

	// Trace flags
	traceEnabled := fs.Bool("trace", false, "Enable execution tracing")
	traceFilter := fs.String("trace-filter", "", "Trace filter pattern (glob, e.g., 'concat' or 'd*')")

	// Inspection flags
	dump := fs.Bool("dump", false, "Print the program's steps without running them")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: miniscript [flags] program.yaml\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return runtime.ExitUsage
	}

	logger := log.New(stderr, "miniscript: ", 0)

	if fs.NArg() != 1 {
		fs.Usage()
		return runtime.ExitUsage
	}

	cfg := runtime.DefaultConfig()
	if *configPath != "" {
		loaded, err := runtime.LoadConfig(*configPath)
		if err != nil {
			logger.Printf("Failed to load config: %v", err)
			return runtime.ExitUsage
		}
		cfg = loaded
	}
	if *maxConcat != 0 {
		cfg.MaxStringConcat = runtime.ClampStringLimit(*maxConcat)
	}
	if *traceEnabled {
		cfg.Trace = true
	}
	if *traceFilter != "" {
		cfg.TraceFilter = splitFilters(*traceFilter)
	}

	prog, err := program.Load(fs.Arg(0))
	if err != nil {
		logger.Printf("Failed to load program: %v", err)
		return runtime.ExitUsage
	}

	if *dump {
		dumpProgram(stdout, prog)
		return runtime.ExitOK
	}

	// Initialize tracer
	if cfg.Trace {
		trace.Init(true, cfg.TraceFilter, stderr)
		logger.Printf("Tracing enabled (filters: %v)", cfg.TraceFilter)
	} else {
		trace.Init(false, nil, nil)
	}

	status := runtime.ExitOK
	rt := runtime.New(stdout, stderr)
	rt.SetMaxStringConcat(cfg.MaxStringConcat)
	rt.SetExit(func(code int) { status = code })
	if _, err := program.Exec(rt, prog); err != nil {
		rt.Fatal(err)
	}
	return status
}

// splitFilters parses a comma-separated filter list
func splitFilters(s string) []string {
	filters := strings.Split(s, ",")
	for i := range filters {
		filters[i] = strings.TrimSpace(filters[i])
	}
	return filters
}

// dumpProgram prints each step on its own numbered line
func dumpProgram(w io.Writer, prog *program.Program) {
	fmt.Fprintf(w, "=== %s (%d steps) ===\n", prog.Name, len(prog.Steps))
	for i := range prog.Steps {
		fmt.Fprintf(w, "%3d: %s\n", i+1, prog.Steps[i].String())
	}
}
