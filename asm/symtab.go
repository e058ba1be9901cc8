package asm

import (
	"fmt"
	"io"
)

// TableMode selects whether a SymbolTable rejects duplicate names.
type TableMode int

const (
	// Unique requires every added name to be distinct.
	Unique TableMode = iota
	// NonUnique allows the same name to be added more than once; used
	// for the relocation table, which records every jump site.
	NonUnique
)

// Symbol is one entry of a SymbolTable: a name and its byte address.
type Symbol struct {
	Name string
	Addr uint32
}

// SymbolTable is an ordered, append-only sequence of Symbols. Iteration
// order always equals insertion order. In Unique mode all names are
// distinct; in NonUnique mode duplicates are permitted.
type SymbolTable struct {
	mode    TableMode
	entries []Symbol
}

// NewSymbolTable creates an empty table in the given mode.
func NewSymbolTable(mode TableMode) *SymbolTable {
	return &SymbolTable{mode: mode}
}

// Add appends name at addr. It fails if addr is not a multiple of 4, or if
// the table is in Unique mode and name already exists.
func (t *SymbolTable) Add(name string, addr uint32) error {
	if addr%4 != 0 {
		return errMisaligned
	}
	if t.mode == Unique {
		for _, e := range t.entries {
			if e.Name == name {
				return &duplicateNameError{name: name}
			}
		}
	}
	t.entries = append(t.entries, Symbol{Name: name, Addr: addr})
	return nil
}

// GetAddr returns the address of the first entry named name.
func (t *SymbolTable) GetAddr(name string) (uint32, bool) {
	for _, e := range t.entries {
		if e.Name == name {
			return e.Addr, true
		}
	}
	return 0, false
}

// Entries returns every symbol in insertion order. The returned slice must
// not be mutated by callers.
func (t *SymbolTable) Entries() []Symbol {
	return t.entries
}

// Len returns the number of entries currently stored.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// Write emits "<addr>\t<name>\n" for each entry in insertion order, with no
// header and no trailing blank line.
func (t *SymbolTable) Write(w io.Writer) error {
	for _, e := range t.entries {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Addr, e.Name); err != nil {
			return err
		}
	}
	return nil
}

// errMisaligned is returned by Add when addr is not word-aligned.
var errMisaligned = &misalignedError{}

type misalignedError struct{}

func (*misalignedError) Error() string { return "address is not a multiple of 4" }

// IsMisaligned reports whether err is the address-misalignment error.
func IsMisaligned(err error) bool {
	_, ok := err.(*misalignedError)
	return ok
}

type duplicateNameError struct {
	name string
}

func (e *duplicateNameError) Error() string {
	return "name '" + e.name + "' already exists in table"
}

// DuplicateName reports whether err is a duplicate-name error and, if so,
// returns the offending name.
func DuplicateName(err error) (string, bool) {
	if e, ok := err.(*duplicateNameError); ok {
		return e.name, true
	}
	return "", false
}
