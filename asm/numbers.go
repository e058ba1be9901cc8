package asm

import "strconv"

// ParseNumber parses text as a signed integer in base 0 (decimal by
// default, 0x/0X for hex, a leading 0 for octal), consuming the entire
// token, and checks that the result falls within [lower, upper] inclusive.
func ParseNumber(text string, lower, upper int64) (int64, bool) {
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, false
	}
	if n < lower || n > upper {
		return 0, false
	}
	return n, true
}
