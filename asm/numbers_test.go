package asm

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		text         string
		lower, upper int64
		want         int64
		ok           bool
	}{
		{"0", 0, 65535, 0, true},
		{"65535", 0, 65535, 65535, true},
		{"65536", 0, 65535, 0, false},
		{"-1", 0, 65535, 0, false},
		{"-32768", -32768, 32767, -32768, true},
		{"32767", -32768, 32767, 32767, true},
		{"32768", -32768, 32767, 0, false},
		{"0x10", 0, 65535, 16, true},
		{"010", 0, 65535, 8, true},
		{"", 0, 65535, 0, false},
		{"abc", 0, 65535, 0, false},
		{"31", 0, 31, 31, true},
		{"32", 0, 31, 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.text, c.lower, c.upper)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseNumber(%q, %d, %d) = %d, %v; want %d, %v", c.text, c.lower, c.upper, got, ok, c.want, c.ok)
		}
	}
}
