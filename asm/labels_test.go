package asm

import "testing"

func TestIsValidLabel(t *testing.T) {
	valid := []string{"loop", "_start", "Loop2", "a", "_", "loop_1"}
	for _, l := range valid {
		if !IsValidLabel(l) {
			t.Errorf("IsValidLabel(%q) = false, want true", l)
		}
	}

	invalid := []string{"", "2loop", "loop-1", "loop.1", "loop 1", "$loop"}
	for _, l := range invalid {
		if IsValidLabel(l) {
			t.Errorf("IsValidLabel(%q) = true, want false", l)
		}
	}
}
