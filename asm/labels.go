package asm

// IsValidLabel reports whether text is a syntactically valid label: a
// non-empty identifier whose first character is an ASCII letter or
// underscore and whose remaining characters are alphanumeric or
// underscore.
func IsValidLabel(text string) bool {
	if text == "" {
		return false
	}
	for i, c := range text {
		switch {
		case i == 0:
			if !isAlpha(c) && c != '_' {
				return false
			}
		default:
			if !isAlnum(c) && c != '_' {
				return false
			}
		}
	}
	return true
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c rune) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
