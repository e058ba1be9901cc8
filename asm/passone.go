package asm

import (
	"bufio"
	"io"
	"strings"

	"mips2pass/diag"
)

// DefaultMaxLineLength is the line buffer size used when a caller doesn't
// have a configured value (mirrors the original assembler's BUF_SIZE).
const DefaultMaxLineLength = 1024

// PassOne reads assembly source from r, line by line, strips comments,
// recognizes leading labels, expands pseudoinstructions, and writes the
// expanded intermediate stream to w. Labels are recorded in symbols at the
// byte offset of the instruction that follows them.
//
// maxLineLength bounds the longest source line PassOne will scan; pass 0
// to fall back to DefaultMaxLineLength. warnLineCount, if positive, makes
// PassOne log one advisory "runaway file" diagnostic the first time the
// source exceeds that many lines; 0 or negative disables the warning.
//
// PassOne never aborts on an error: every line is processed and every
// diagnostic is recorded via diags, matching the original assembler's
// "log and continue" contract. The one exception is a line longer than
// maxLineLength (or a read failure): reading stops there, and that is
// recorded as an error. It returns true iff no diagnostic was recorded
// (warnings don't count).
func PassOne(r io.Reader, w io.Writer, symbols *SymbolTable, diags *diag.Set, maxLineLength, warnLineCount int) bool {
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

		mnemonic, args := consumeLabel(lineNo, tokens, byteOffset, symbols, diags)
		if mnemonic == "" {
			continue
		}

		if len(args) > MaxArgs {
			diags.ExtraArgument(lineNo, args[MaxArgs])
			continue
		}

		var buf strings.Builder
		count := Expand(&buf, mnemonic, args)
		if count == 0 {
			diags.InvalidInstruction(lineNo, mnemonic, args)
			continue
		}

		io.WriteString(w, buf.String())
		byteOffset += 4 * uint32(count)
	}
	if err := scanner.Err(); err != nil {
		diags.Record("Error - unable to read line %d: %v", lineNo+1, err)
	}

	return !diags.HasErrors()
}

// consumeLabel handles §4.7 step 3: if the first token ends in ':', it is
// a candidate label. Regardless of whether it validates, the token
// following it (if any) becomes the start of the instruction — a
// malformed label does not make its own text available as a mnemonic.
// consumeLabel returns the chosen mnemonic and remaining args; mnemonic
// is "" if the line has no instruction (label-only line).
func consumeLabel(lineNo int, tokens []string, byteOffset uint32, symbols *SymbolTable, diags *diag.Set) (mnemonic string, args []string) {
	first := tokens[0]
	if !strings.HasSuffix(first, ":") {
		return first, tokens[1:]
	}

	label := first[:len(first)-1]
	if !IsValidLabel(label) {
		diags.InvalidLabel(lineNo, label)
	} else if err := symbols.Add(label, byteOffset); err != nil {
		if name, isDup := DuplicateName(err); isDup {
			diags.DuplicateName(name)
		} else if IsMisaligned(err) {
			diags.MisalignedAddress()
		}
	}

	rest := tokens[1:]
	if len(rest) == 0 {
		return "", nil
	}
	return rest[0], rest[1:]
}
