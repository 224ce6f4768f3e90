package cpu

import (
	"fmt"
)

// Opcode is the operation class held in bits 15-12 of an instruction.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

// SignExtend widens the low bits of x to a signed 16-bit value.
func SignExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xffff << bits
	}

	return x
}

// Instruction is a single 16-bit instruction word. Field accessors are
// pure; decoding never fails.
type Instruction uint16

// Op returns the opcode field in bits 15-12.
func (instr Instruction) Op() Opcode {
	word := uint16(instr)
	return Opcode((word >> 12) & 0xf)
}

// DR returns the destination register field in bits 11-9.
func (instr Instruction) DR() uint16 {
	word := uint16(instr)
	return (word >> 9) & 0x7
}

// SR returns the source register field of the store instructions,
// bits 11-9.
func (instr Instruction) SR() uint16 {
	word := uint16(instr)
	return (word >> 9) & 0x7
}

// CondMask returns the branch condition bits n, z, p as a Flag mask.
func (instr Instruction) CondMask() Flag {
	word := uint16(instr)
	return Flag((word >> 9) & 0x7)
}

// SR1 returns the first source register field in bits 8-6.
func (instr Instruction) SR1() uint16 {
	word := uint16(instr)
	return (word >> 6) & 0x7
}

// BaseR returns the base register field in bits 8-6.
func (instr Instruction) BaseR() uint16 {
	word := uint16(instr)
	return (word >> 6) & 0x7
}

// ImmBit reports whether the immediate mode bit 5 is set.
func (instr Instruction) ImmBit() bool {
	word := uint16(instr)
	return (word>>5)&0x1 != 0
}

// LongBit reports whether bit 11, the PC-relative subroutine form, is set.
func (instr Instruction) LongBit() bool {
	word := uint16(instr)
	return (word>>11)&0x1 != 0
}

// SR2 returns the second source register field in bits 2-0.
func (instr Instruction) SR2() uint16 {
	word := uint16(instr)
	return (word >> 0) & 0x7
}

// Imm5 returns the sign-extended 5-bit immediate in bits 4-0.
func (instr Instruction) Imm5() uint16 {
	word := uint16(instr)
	return SignExtend((word>>0)&0x1f, 5)
}

// Offset6 returns the sign-extended 6-bit base offset in bits 5-0.
func (instr Instruction) Offset6() uint16 {
	word := uint16(instr)
	return SignExtend((word>>0)&0x3f, 6)
}

// PCOffset9 returns the sign-extended 9-bit PC-relative offset in bits 8-0.
func (instr Instruction) PCOffset9() uint16 {
	word := uint16(instr)
	return SignExtend((word>>0)&0x1ff, 9)
}

// PCOffset11 returns the sign-extended 11-bit PC-relative offset in
// bits 10-0.
func (instr Instruction) PCOffset11() uint16 {
	word := uint16(instr)
	return SignExtend((word>>0)&0x7ff, 11)
}

// TrapVector returns the trap vector in bits 7-0.
func (instr Instruction) TrapVector() TrapVector {
	word := uint16(instr)
	return TrapVector((word >> 0) & 0xff)
}

// String returns the assembly language representation of this instruction.
func (instr Instruction) String() (out string) {
	op := instr.Op()

	switch op {
	case OP_BR:
		out = fmt.Sprintf("br%v #%d", instr.CondMask(), int16(instr.PCOffset9()))
	case OP_ADD, OP_AND:
		if instr.ImmBit() {
			out = fmt.Sprintf("%v r%d, r%d, #%d", op, instr.DR(), instr.SR1(), int16(instr.Imm5()))
		} else {
			out = fmt.Sprintf("%v r%d, r%d, r%d", op, instr.DR(), instr.SR1(), instr.SR2())
		}
	case OP_LD, OP_LDI, OP_LEA:
		out = fmt.Sprintf("%v r%d, #%d", op, instr.DR(), int16(instr.PCOffset9()))
	case OP_ST, OP_STI:
		out = fmt.Sprintf("%v r%d, #%d", op, instr.SR(), int16(instr.PCOffset9()))
	case OP_LDR:
		out = fmt.Sprintf("ldr r%d, r%d, #%d", instr.DR(), instr.BaseR(), int16(instr.Offset6()))
	case OP_STR:
		out = fmt.Sprintf("str r%d, r%d, #%d", instr.SR(), instr.BaseR(), int16(instr.Offset6()))
	case OP_JSR:
		if instr.LongBit() {
			out = fmt.Sprintf("jsr #%d", int16(instr.PCOffset11()))
		} else {
			out = fmt.Sprintf("jsrr r%d", instr.BaseR())
		}
	case OP_JMP:
		if instr.BaseR() == 7 {
			out = "ret"
		} else {
			out = fmt.Sprintf("jmp r%d", instr.BaseR())
		}
	case OP_NOT:
		out = fmt.Sprintf("not r%d, r%d", instr.DR(), instr.SR1())
	case OP_TRAP:
		out = fmt.Sprintf("trap %v", instr.TrapVector())
	case OP_RTI, OP_RES:
		out = op.String()
	}

	return
}
