package asm

import "strings"

// separators is the set of characters that split a source line into
// tokens once comments are stripped: whitespace, comma, and the
// parentheses used in memory operands like "4($sp)".
const separators = " \f\n\r\t\v,()"

// stripComment truncates line at the first '#', if any.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// Tokenize strips a trailing comment from line and splits the remainder
// on whitespace/punctuation, discarding empty tokens. A line yielding no
// tokens returns an empty (non-nil-required) slice.
func Tokenize(line string) []string {
	line = stripComment(line)
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}
