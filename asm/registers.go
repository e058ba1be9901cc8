package asm

import "strconv"

// registerNames maps canonical ABI register names to their 5-bit index,
// per the MIPS32 calling convention (see the MIPS Green Sheet).
var registerNames = map[string]uint32{
	"$zero": 0, "$at": 1, "$v0": 2, "$v1": 3,
	"$a0": 4, "$a1": 5, "$a2": 6, "$a3": 7,
	"$t0": 8, "$t1": 9, "$t2": 10, "$t3": 11,
	"$t4": 12, "$t5": 13, "$t6": 14, "$t7": 15,
	"$s0": 16, "$s1": 17, "$s2": 18, "$s3": 19,
	"$s4": 20, "$s5": 21, "$s6": 22, "$s7": 23,
	"$t8": 24, "$t9": 25, "$k0": 26, "$k1": 27,
	"$gp": 28, "$sp": 29, "$fp": 30, "$ra": 31,
}

// ResolveRegister maps a register name, either the canonical ABI form
// ($zero, $t0, ...) or the numeric form ($0..$31), to its 5-bit index.
// Any other token, including "", is rejected.
func ResolveRegister(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	if n, ok := registerNames[name]; ok {
		return n, true
	}
	if len(name) < 2 || name[0] != '$' {
		return 0, false
	}
	num, ok := parseDecimalUint(name[1:])
	if !ok || num > 31 {
		return 0, false
	}
	return num, true
}

// parseDecimalUint parses a non-empty run of ASCII digits into a uint32,
// rejecting anything that isn't a plain digit run (no sign, no overflow).
// strconv.ParseUint rejects both on its own: a leading '+'/'-' is not a
// valid digit for base 10, and bitSize=32 makes values above 2^32-1 an
// out-of-range error instead of wrapping.
func parseDecimalUint(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
