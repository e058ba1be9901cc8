package asm

import (
	"bufio"
	"io"

	"mips2pass/diag"
)

// PassTwo reads the expanded intermediate stream produced by PassOne (no
// comments, no labels, at most MaxArgs arguments per line) and writes one
// 8-digit hex instruction word per line to w. The symbol table must
// already be complete; relocations is appended to for every j/jal site
// encountered.
//
// maxLineLength bounds the longest intermediate line PassTwo will scan;
// pass 0 to fall back to DefaultMaxLineLength. warnLineCount, if positive,
// makes PassTwo log one advisory "runaway file" diagnostic the first time
// the intermediate stream exceeds that many lines; 0 or negative disables
// the warning.
//
// Like PassOne, PassTwo never aborts: it logs through diags and keeps
// going, except that reading stops at a line longer than maxLineLength (or
// a read failure), which is recorded as an error. It returns true iff no
// diagnostic was recorded (warnings don't count).
func PassTwo(r io.Reader, w io.Writer, enc *Encoder, diags *diag.Set, maxLineLength, warnLineCount int) bool {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineLength), maxLineLength)

	lineNo := 0
	var byteOffset uint32
	warned := false

	for scanner.Scan() {
		lineNo++
		if warnLineCount > 0 && !warned && lineNo > warnLineCount {
			diags.RunawayFile(lineNo, warnLineCount)
			warned = true
		}
		tokens := Tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		mnemonic := tokens[0]
		args := tokens[1:]

		if err := enc.Encode(w, mnemonic, args, byteOffset); err != nil {
			diags.InvalidInstruction(lineNo, mnemonic, args)
			continue
		}
		byteOffset += 4
	}
	if err := scanner.Err(); err != nil {
		diags.Record("Error - unable to read line %d: %v", lineNo+1, err)
	}

	return !diags.HasErrors()
}
