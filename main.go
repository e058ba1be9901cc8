// Command mips2pass is a two-pass assembler for a fixed subset of the
// MIPS32 instruction set.
package main

import (
	"fmt"
	"os"

	"mips2pass/asm"
	"mips2pass/config"
	"mips2pass/diag"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) == 1 && args[0] == "-version" {
		fmt.Printf("mips2pass %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		os.Exit(0)
	}
	if len(args) == 1 && args[0] == "-help" {
		printUsage()
		os.Exit(0)
	}

	inv, ok := parseArgs(args)
	if !ok {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	maxLineLength := cfg.Assembler.MaxLineLength
	warnLineCount := cfg.Assembler.WarnLineCount

	logFile := inv.logFile
	if logFile == "" {
		logFile = cfg.Diagnostics.OutputFile
	}
	sink, closeSink := openSink(logFile)
	defer closeSink()

	diags := diag.NewSet(sink)
	symbols := asm.NewSymbolTable(asm.Unique)
	relocations := asm.NewSymbolTable(asm.NonUnique)

	anyErr := false

	if inv.mode == modeBoth || inv.mode == modePassOne {
		src, err := os.Open(inv.input) // #nosec G304 -- user-specified assembler input path
		if err != nil {
			diags.Record("Error: unable to open input file: %s", inv.input)
			os.Exit(1)
		}
		dst, err := os.Create(inv.inter) // #nosec G304 -- user-specified intermediate output path
		if err != nil {
			src.Close()
			diags.Record("Error: unable to open intermediate file: %s", inv.inter)
			os.Exit(1)
		}

		if cfg.Diagnostics.Verbose {
			fmt.Printf("Running pass one: %s -> %s\n", inv.input, inv.inter)
		}
		ok := asm.PassOne(src, dst, symbols, diags, maxLineLength, warnLineCount)
		src.Close()
		dst.Close()
		if !ok {
			anyErr = true
		}
	}

	if inv.mode == modeBoth || inv.mode == modePassTwo {
		src, err := os.Open(inv.inter) // #nosec G304 -- user-specified intermediate input path
		if err != nil {
			diags.Record("Error: unable to open intermediate file: %s", inv.inter)
			os.Exit(1)
		}
		dst, err := os.Create(inv.output) // #nosec G304 -- user-specified assembler output path
		if err != nil {
			src.Close()
			diags.Record("Error: unable to open output file: %s", inv.output)
			os.Exit(1)
		}

		if cfg.Diagnostics.Verbose {
			fmt.Printf("Running pass two: %s -> %s\n", inv.inter, inv.output)
		}
		enc := asm.NewEncoder(symbols, relocations)
		ok := asm.RunPassTwo(src, dst, enc, diags, maxLineLength, warnLineCount)
		if err := asm.WriteTables(dst, symbols, relocations); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing tables: %v\n", err)
		}
		src.Close()
		dst.Close()
		if !ok {
			anyErr = true
		}
	}

	diags.Summary()
	if logFile != "" {
		fmt.Printf("Results saved to %s\n", logFile)
	}

	if anyErr {
		os.Exit(1)
	}
	os.Exit(0)
}

type mode int

const (
	modeBoth mode = iota
	modePassOne
	modePassTwo
)

type invocation struct {
	mode    mode
	input   string
	inter   string
	output  string
	logFile string
}

// parseArgs implements the CLI contract: exactly one of the three
// positional forms, optionally followed by "-log <file>". Any other shape
// is rejected.
func parseArgs(args []string) (invocation, bool) {
	if len(args) != 3 && len(args) != 5 {
		return invocation{}, false
	}

	var inv invocation
	switch args[0] {
	case "-p1":
		inv.mode = modePassOne
		inv.input = args[1]
		inv.inter = args[2]
	case "-p2":
		inv.mode = modePassTwo
		inv.inter = args[1]
		inv.output = args[2]
	default:
		inv.mode = modeBoth
		inv.input = args[0]
		inv.inter = args[1]
		inv.output = args[2]
	}

	if len(args) == 5 {
		if args[3] != "-log" {
			return invocation{}, false
		}
		inv.logFile = args[4]
	}

	return inv, true
}

func openSink(logFile string) (diag.Sink, func()) {
	if logFile == "" {
		return diag.NewSink(os.Stdout), func() {}
	}
	f, err := os.Create(logFile) // #nosec G304 -- user-specified log file path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to open log file: %s\n", logFile)
		return diag.NewSink(os.Stdout), func() {}
	}
	return diag.NewSink(f), func() { f.Close() }
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  Runs both passes: mips2pass <input file> <intermediate file> <output file>")
	fmt.Println("  Run pass #1:      mips2pass -p1 <input file> <intermediate file>")
	fmt.Println("  Run pass #2:      mips2pass -p2 <intermediate file> <output file>")
	fmt.Println("Append -log <file name> after any option to save log files to a text file.")
}
