package cpu

import (
	"errors"
)

// TrapVector is a trap service routine number.
type TrapVector uint16

//go:generate go tool stringer -linecomment -type=TrapVector
const (
	TRAP_GETC  = TrapVector(0x20) // getc
	TRAP_OUT   = TrapVector(0x21) // out
	TRAP_PUTS  = TrapVector(0x22) // puts
	TRAP_IN    = TrapVector(0x23) // in
	TRAP_PUTSP = TrapVector(0x24) // putsp
	TRAP_HALT  = TrapVector(0x25) // halt
)

// readKey reads a single key from the console into r0 and refreshes the
// condition flags.
func (cpu *Cpu) readKey(echo bool) (err error) {
	key, err := cpu.Console.ReadKey()
	if err != nil {
		return
	}

	if echo {
		_, err = cpu.Console.Write([]byte{key})
		if err != nil {
			return
		}
	}

	cpu.Reg.Set(0, uint16(key))
	cpu.Reg.SetFlags(cpu.Reg.Get(0))

	return
}

// trap dispatches a trap service routine on the console device.
func (cpu *Cpu) trap(vector TrapVector) (err error) {
	switch vector {
	case TRAP_GETC:
		// No echo.
		err = cpu.readKey(false)
	case TRAP_OUT:
		_, err = cpu.Console.Write([]byte{byte(cpu.Reg.Get(0))})
	case TRAP_PUTS:
		// One character per word, low byte only.
		var text []byte
		for value := range cpu.Mem.Scan(cpu.Reg.Get(0)) {
			text = append(text, byte(value))
		}
		_, err = cpu.Console.Write(text)
	case TRAP_IN:
		_, err = cpu.Console.Write([]byte(f("Enter a character: ")))
		if err == nil {
			err = cpu.readKey(true)
		}
	case TRAP_PUTSP:
		// Two packed characters per word, low byte first. A zero high
		// byte ends the word early.
		var text []byte
		for value := range cpu.Mem.Scan(cpu.Reg.Get(0)) {
			text = append(text, byte(value))
			if high := byte(value >> 8); high != 0 {
				text = append(text, high)
			}
		}
		_, err = cpu.Console.Write(text)
	case TRAP_HALT:
		_, err = cpu.Console.Write([]byte(f("Halting the VM...") + "\n"))
		if err == nil {
			cpu.Running = false
		}
	default:
		err = ErrUnknownTrap(vector)
		return
	}

	if err != nil {
		err = errors.Join(ErrConsole, err)
	}

	return
}
