package cpu

import (
	"errors"

	"github.com/jorbush/lc3vm/translate"
)

var f = translate.From

var (
	// Trap dispatch errors
	ErrConsole = errors.New(f("console"))
)

type ErrBadOpcode Instruction

func (eb ErrBadOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eb), Instruction(eb))
}

func (eb ErrBadOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrBadOpcode)
	return
}

type ErrUnknownTrap TrapVector

func (et ErrUnknownTrap) Error() string {
	return f("unknown trap 0x%02x", uint16(et))
}

func (et ErrUnknownTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownTrap)
	return
}
