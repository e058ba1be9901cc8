package asm

import (
	"fmt"
	"io"

	"mips2pass/diag"
)

// RunPassTwo drives pass two over src and writes the full ".text" section
// of the final output to dst: the section marker, one hex line per
// instruction, and a trailing blank line. It returns pass two's
// success flag.
func RunPassTwo(src io.Reader, dst io.Writer, enc *Encoder, diags *diag.Set, maxLineLength, warnLineCount int) bool {
	fmt.Fprintln(dst, ".text")
	ok := PassTwo(src, dst, enc, diags, maxLineLength, warnLineCount)
	fmt.Fprintln(dst)
	return ok
}

// WriteTables appends the .symbol and .relocation sections to dst, in that
// order, each preceded by its own section marker line and with no trailing
// blank line after the final section. This matches the original
// assembler's "\n.symbol\n" / "\n.relocation\n" framing exactly.
func WriteTables(dst io.Writer, symbols, relocations *SymbolTable) error {
	if _, err := fmt.Fprintln(dst, ".symbol"); err != nil {
		return err
	}
	if err := symbols.Write(dst); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(dst); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(dst, ".relocation"); err != nil {
		return err
	}
	return relocations.Write(dst)
}
