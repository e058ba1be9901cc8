// Package diag collects and formats the assembler's diagnostic output.
//
// A Sink is the external collaborator named in the spec as a "write-line
// interface" — both passes log through one instead of writing to stderr
// directly, so they stay testable against an in-memory sink.
package diag

import (
	"fmt"
	"io"
	"log"
)

// Sink receives one formatted diagnostic line at a time.
type Sink interface {
	Printf(format string, args ...any)
}

// NewSink wraps w in a line-oriented Sink with no extra prefix or flags,
// since every diagnostic line below is already fully formatted.
func NewSink(w io.Writer) Sink {
	return log.New(w, "", 0)
}

// Set accumulates diagnostics recorded over the course of a pass. It never
// aborts early: every append just records, matching the "process the whole
// file, report at the end" contract of pass one and pass two.
type Set struct {
	sink     Sink
	entries  []string
	warnings []string
}

// NewSet creates an empty diagnostic set writing through sink.
func NewSet(sink Sink) *Set {
	return &Set{sink: sink}
}

// Record formats and logs a diagnostic line, and marks the set as having
// seen an error.
func (s *Set) Record(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	s.entries = append(s.entries, line)
	if s.sink != nil {
		s.sink.Printf("%s", line)
	}
}

// Warn formats and logs an advisory diagnostic. Unlike Record, it does not
// affect HasErrors — a warning alone must not make the process exit
// non-zero.
func (s *Set) Warn(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	s.warnings = append(s.warnings, line)
	if s.sink != nil {
		s.sink.Printf("%s", line)
	}
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Set) HasErrors() bool {
	return len(s.entries) > 0
}

// Entries returns every error diagnostic recorded, in order.
func (s *Set) Entries() []string {
	return s.entries
}

// Warnings returns every advisory diagnostic recorded, in order.
func (s *Set) Warnings() []string {
	return s.warnings
}

// Summary logs the pass/fail summary line for the whole assembly run.
func (s *Set) Summary() {
	if s.sink == nil {
		return
	}
	if s.HasErrors() {
		s.sink.Printf("One or more errors encountered during assembly operation.")
	} else {
		s.sink.Printf("Assembly operation completed successfully!")
	}
}

// Invalid label at line N
func (s *Set) InvalidLabel(line int, label string) {
	s.Record("Error - invalid label at line %d: %s", line, label)
}

// ExtraArgument reports more than MaxArgs arguments found on a line.
func (s *Set) ExtraArgument(line int, tok string) {
	s.Record("Error - extra argument at line %d: %s", line, tok)
}

// InvalidInstruction reports a mnemonic/args combination that failed to
// encode or expand.
func (s *Set) InvalidInstruction(line int, mnemonic string, args []string) {
	s.Record("Error - invalid instruction at line %d: %s %s", line, mnemonic, joinArgs(args))
}

// MisalignedAddress reports a non-multiple-of-4 symbol table address.
func (s *Set) MisalignedAddress() {
	s.Record("Error: address is not a multiple of 4.")
}

// DuplicateName reports a duplicate name in a unique-mode symbol table.
func (s *Set) DuplicateName(name string) {
	s.Record("Error: name '%s' already exists in table.", name)
}

// RunawayFile warns once that a file has grown past limit lines. It is
// advisory: a large input is not itself an error.
func (s *Set) RunawayFile(lineNo, limit int) {
	s.Warn("Warning: input has reached %d lines (limit %d), continuing", lineNo, limit)
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
