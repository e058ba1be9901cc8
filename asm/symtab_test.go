package asm

import (
	"strings"
	"testing"
)

func TestSymbolTableAddAndGet(t *testing.T) {
	st := NewSymbolTable(Unique)

	if err := st.Add("start", 0); err != nil {
		t.Fatalf("Add(start, 0) failed: %v", err)
	}
	if err := st.Add("loop", 8); err != nil {
		t.Fatalf("Add(loop, 8) failed: %v", err)
	}

	addr, ok := st.GetAddr("loop")
	if !ok || addr != 8 {
		t.Errorf("GetAddr(loop) = %d, %v; want 8, true", addr, ok)
	}

	if _, ok := st.GetAddr("missing"); ok {
		t.Error("GetAddr(missing) succeeded, want failure")
	}

	if st.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st.Len())
	}
}

func TestSymbolTableMisaligned(t *testing.T) {
	st := NewSymbolTable(Unique)
	err := st.Add("odd", 3)
	if err == nil || !IsMisaligned(err) {
		t.Errorf("Add(odd, 3) err = %v, want misaligned error", err)
	}
}

func TestSymbolTableDuplicateRejectedInUniqueMode(t *testing.T) {
	st := NewSymbolTable(Unique)
	if err := st.Add("start", 0); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	err := st.Add("start", 4)
	name, isDup := DuplicateName(err)
	if !isDup || name != "start" {
		t.Errorf("second Add(start) err = %v; want duplicate name error for 'start'", err)
	}
}

func TestSymbolTableNonUniqueAllowsDuplicates(t *testing.T) {
	st := NewSymbolTable(NonUnique)
	if err := st.Add("target", 0); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := st.Add("target", 4); err != nil {
		t.Errorf("second Add(target) in NonUnique mode failed: %v", err)
	}
	if st.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st.Len())
	}
}

func TestSymbolTableWrite(t *testing.T) {
	st := NewSymbolTable(Unique)
	st.Add("start", 0)
	st.Add("loop", 8)

	var buf strings.Builder
	if err := st.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "0\tstart\n8\tloop\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestSymbolTableWriteEmpty(t *testing.T) {
	st := NewSymbolTable(Unique)
	var buf strings.Builder
	if err := st.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "" {
		t.Errorf("Write() on empty table = %q, want empty", buf.String())
	}
}
