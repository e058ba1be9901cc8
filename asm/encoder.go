package asm

import (
	"fmt"
	"io"
)

// Encoder translates one expanded instruction into its 32-bit MIPS32 word
// and appends it to a sink as an 8-digit lowercase hex line. It holds the
// read-only symbol table built by pass one and the relocation table that
// pass two appends jump sites to.
type Encoder struct {
	Symbols     *SymbolTable
	Relocations *SymbolTable
}

// NewEncoder creates an encoder bound to the given symbol and relocation
// tables.
func NewEncoder(symbols, relocations *SymbolTable) *Encoder {
	return &Encoder{Symbols: symbols, Relocations: relocations}
}

// Encode dispatches mnemonic/args to the matching form encoder, computes
// the instruction word for the instruction at byte address addr, and
// writes it to w as an 8-digit lowercase hex line. On any argument failure
// it writes nothing and returns an error.
func (e *Encoder) Encode(w io.Writer, mnemonic string, args []string, addr uint32) error {
	switch mnemonic {
	case "addu":
		return e.rType(w, 0x21, args)
	case "or":
		return e.rType(w, 0x25, args)
	case "slt":
		return e.rType(w, 0x2a, args)
	case "sltu":
		return e.rType(w, 0x2b, args)
	case "sll":
		return e.shift(w, 0x00, args)
	case "jr":
		return e.jr(w, 0x08, args)
	case "addiu":
		return e.iType(w, 0x09, args, -32768, 32767)
	case "ori":
		return e.iType(w, 0x0d, args, 0, 65535)
	case "lui":
		return e.lui(w, 0x0f, args)
	case "lb":
		return e.mem(w, 0x20, args)
	case "lbu":
		return e.mem(w, 0x24, args)
	case "lw":
		return e.mem(w, 0x23, args)
	case "sb":
		return e.mem(w, 0x28, args)
	case "sw":
		return e.mem(w, 0x2b, args)
	case "beq":
		return e.branch(w, 0x04, args, addr)
	case "bne":
		return e.branch(w, 0x05, args, addr)
	case "j":
		return e.jump(w, 0x02, args, addr)
	case "jal":
		return e.jump(w, 0x03, args, addr)
	default:
		return fmt.Errorf("unknown mnemonic: %s", mnemonic)
	}
}

// rType encodes addu/or/slt/sltu: rd, rs, rt.
func (e *Encoder) rType(w io.Writer, funct uint32, args []string) error {
	if len(args) != 3 {
		return errArity
	}
	rd, ok1 := ResolveRegister(args[0])
	rs, ok2 := ResolveRegister(args[1])
	rt, ok3 := ResolveRegister(args[2])
	if !ok1 || !ok2 || !ok3 {
		return errRegister
	}
	word := (rs << 21) | (rt << 16) | (rd << 11) | funct
	return writeHex(w, word)
}

// shift encodes sll: rd, rt, shamt in [0, 31].
func (e *Encoder) shift(w io.Writer, funct uint32, args []string) error {
	if len(args) != 3 {
		return errArity
	}
	rd, ok1 := ResolveRegister(args[0])
	rt, ok2 := ResolveRegister(args[1])
	shamt, ok3 := ParseNumber(args[2], 0, 31)
	if !ok1 || !ok2 || !ok3 {
		return errRegister
	}
	word := (rt << 16) | (rd << 11) | (uint32(shamt) << 6) | funct
	return writeHex(w, word)
}

// jr encodes jr: rs.
func (e *Encoder) jr(w io.Writer, funct uint32, args []string) error {
	if len(args) != 1 {
		return errArity
	}
	rs, ok := ResolveRegister(args[0])
	if !ok {
		return errRegister
	}
	word := (rs << 21) | funct
	return writeHex(w, word)
}

// iType encodes addiu/ori: rt, rs, imm within [lower, upper].
func (e *Encoder) iType(w io.Writer, opcode uint32, args []string, lower, upper int64) error {
	if len(args) != 3 {
		return errArity
	}
	rt, ok1 := ResolveRegister(args[0])
	rs, ok2 := ResolveRegister(args[1])
	imm, ok3 := ParseNumber(args[2], lower, upper)
	if !ok1 || !ok2 || !ok3 {
		return errRegister
	}
	word := (opcode << 26) | (rs << 21) | (rt << 16) | (uint32(imm) & 0xFFFF)
	return writeHex(w, word)
}

// lui encodes lui: rt, imm in [0, 65535]. rs is implicitly $0.
func (e *Encoder) lui(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 2 {
		return errArity
	}
	rt, ok1 := ResolveRegister(args[0])
	imm, ok2 := ParseNumber(args[1], 0, 65535)
	if !ok1 || !ok2 {
		return errRegister
	}
	word := (opcode << 26) | (rt << 16) | (uint32(imm) & 0xFFFF)
	return writeHex(w, word)
}

// mem encodes lb/lbu/lw/sb/sw: rt, offset, rs. Tokenization turns
// "lw $t0, 4($sp)" into [$t0, 4, $sp], which is exactly this order.
func (e *Encoder) mem(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 3 {
		return errArity
	}
	rt, ok1 := ResolveRegister(args[0])
	off, ok2 := ParseNumber(args[1], -32768, 32767)
	rs, ok3 := ResolveRegister(args[2])
	if !ok1 || !ok2 || !ok3 {
		return errRegister
	}
	word := (opcode << 26) | (rs << 21) | (rt << 16) | (uint32(off) & 0xFFFF)
	return writeHex(w, word)
}

// branch encodes beq/bne: rs, rt, label. The displacement is computed
// relative to the instruction's own address (addr) and the target label
// in the (already complete) symbol table.
//
// The displacement must fit the signed 16-bit immediate field, so the
// valid range is [-32768, 32767]; anything outside it is rejected.
func (e *Encoder) branch(w io.Writer, opcode uint32, args []string, addr uint32) error {
	if len(args) != 3 {
		return errArity
	}
	rs, ok1 := ResolveRegister(args[0])
	rt, ok2 := ResolveRegister(args[1])
	label := args[2]
	if !ok1 || !ok2 || !IsValidLabel(label) {
		return errBranchTarget
	}
	target, ok := e.Symbols.GetAddr(label)
	if !ok {
		return errBranchTarget
	}
	disp := (int64(target) - int64(addr) - 4) / 4
	if disp < -32768 || disp > 32767 {
		return errBranchTarget
	}
	word := (opcode << 26) | (rs << 21) | (rt << 16) | (uint32(disp) & 0xFFFF)
	return writeHex(w, word)
}

// jump encodes j/jal: label. The target is unresolved at encoding time, so
// the word is emitted with target=0 and the jump site is recorded in the
// relocation table for later resolution by an external collaborator.
func (e *Encoder) jump(w io.Writer, opcode uint32, args []string, addr uint32) error {
	if len(args) != 1 {
		return errArity
	}
	label := args[0]
	if !IsValidLabel(label) {
		return errInvalidJumpLabel
	}
	if err := e.Relocations.Add(label, addr); err != nil {
		return err
	}
	word := opcode << 26
	return writeHex(w, word)
}

func writeHex(w io.Writer, word uint32) error {
	_, err := fmt.Fprintf(w, "%08x\n", word)
	return err
}

var (
	errArity            = fmt.Errorf("wrong number of arguments")
	errRegister         = fmt.Errorf("invalid register or immediate operand")
	errBranchTarget     = fmt.Errorf("unresolved or out-of-range branch target")
	errInvalidJumpLabel = fmt.Errorf("invalid jump label")
)
