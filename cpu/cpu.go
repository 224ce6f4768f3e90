package cpu

import (
	"fmt"
	"log"

	"github.com/jorbush/lc3vm/io"
	"github.com/jorbush/lc3vm/memory"
)

// Console is the console device interface.
type Console io.Console

// Cpu is the simulation context for the LC-3 machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg Registers      // Register file.
	Mem *memory.Memory // 16-bit word-addressed memory.

	Console Console // Console device for trap I/O.

	Running bool // Cleared by the halt trap.
	Ticks   int  // Executed instruction counter.
}

// NewCpu creates a new machine wired to the given console device. The
// console also serves as the keyboard behind the memory-mapped status
// and data registers.
func NewCpu(console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:     &memory.Memory{Keyboard: console},
		Console: console,
	}

	cpu.Reset()

	return
}

// Reset the machine state.
// - Clears the registers.
// - Sets the program counter to PC_START.
// - Seeds the condition flags with FLAG_ZRO.
// - Marks the machine as running.
// - Zeros the instruction counter.
// Memory contents are preserved.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg.R[:])
	cpu.Reg.PC = PC_START
	cpu.Reg.Cond = FLAG_ZRO
	cpu.Running = true
	cpu.Ticks = 0
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%4s: %04x\n", "pc", cpu.Reg.PC)
	text += fmt.Sprintf("%4s: %v\n", "cond", cpu.Reg.Cond)
	for n, value := range cpu.Reg.R {
		text += fmt.Sprintf("%4s: %04x\n", fmt.Sprintf("r%d", n), value)
	}

	return
}

// Step fetches and executes a single instruction.
// On error the machine state is left intact for inspection.
func (cpu *Cpu) Step() (err error) {
	at := cpu.Reg.PC
	instr := Instruction(cpu.Mem.Read(at))
	cpu.Reg.PC = at + 1

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", at, instr)
	}

	switch instr.Op() {
	case OP_BR:
		if instr.CondMask()&cpu.Reg.Cond != 0 {
			cpu.Reg.PC += instr.PCOffset9()
		}
	case OP_ADD:
		value := cpu.Reg.Get(instr.SR1())
		if instr.ImmBit() {
			value += instr.Imm5()
		} else {
			value += cpu.Reg.Get(instr.SR2())
		}
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_LD:
		value := cpu.Mem.Read(cpu.Reg.PC + instr.PCOffset9())
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_ST:
		cpu.Mem.Write(cpu.Reg.PC+instr.PCOffset9(), cpu.Reg.Get(instr.SR()))
	case OP_JSR:
		cpu.Reg.Set(7, cpu.Reg.PC)
		if instr.LongBit() {
			cpu.Reg.PC += instr.PCOffset11()
		} else {
			cpu.Reg.PC = cpu.Reg.Get(instr.BaseR())
		}
	case OP_AND:
		value := cpu.Reg.Get(instr.SR1())
		if instr.ImmBit() {
			value &= instr.Imm5()
		} else {
			value &= cpu.Reg.Get(instr.SR2())
		}
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_LDR:
		value := cpu.Mem.Read(cpu.Reg.Get(instr.BaseR()) + instr.Offset6())
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_STR:
		cpu.Mem.Write(cpu.Reg.Get(instr.BaseR())+instr.Offset6(), cpu.Reg.Get(instr.SR()))
	case OP_RTI, OP_RES:
		err = ErrBadOpcode(instr)
	case OP_NOT:
		value := ^cpu.Reg.Get(instr.SR1())
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_LDI:
		value := cpu.Mem.Read(cpu.Mem.Read(cpu.Reg.PC + instr.PCOffset9()))
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_STI:
		cpu.Mem.Write(cpu.Mem.Read(cpu.Reg.PC+instr.PCOffset9()), cpu.Reg.Get(instr.SR()))
	case OP_JMP:
		// RET is jmp r7.
		cpu.Reg.PC = cpu.Reg.Get(instr.BaseR())
	case OP_LEA:
		value := cpu.Reg.PC + instr.PCOffset9()
		cpu.Reg.Set(instr.DR(), value)
		cpu.Reg.SetFlags(value)
	case OP_TRAP:
		cpu.Reg.Set(7, cpu.Reg.PC)
		err = cpu.trap(instr.TrapVector())
	}

	if err == nil {
		cpu.Ticks++
	}

	return
}
