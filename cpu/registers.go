package cpu

// PC_START is the program counter value after reset.
const PC_START = uint16(0x3000)

// Flag is a condition flag bit.
type Flag uint16

const (
	FLAG_POS = Flag(1 << 0) // p
	FLAG_ZRO = Flag(1 << 1) // z
	FLAG_NEG = Flag(1 << 2) // n
)

// String returns the set flags as "nzp" letters, or "-" when none are set.
func (flag Flag) String() (text string) {
	if flag&FLAG_NEG != 0 {
		text += "n"
	}
	if flag&FLAG_ZRO != 0 {
		text += "z"
	}
	if flag&FLAG_POS != 0 {
		text += "p"
	}

	if text == "" {
		text = "-"
	}

	return
}

// Registers is the register file: eight general-purpose registers, the
// program counter, and the condition flags.
type Registers struct {
	R    [8]uint16 // General-purpose register bank.
	PC   uint16    // Program counter.
	Cond Flag      // Condition flags of the last written value.
}

// Get returns general register i. The index is masked to 0-7.
func (reg *Registers) Get(i uint16) uint16 {
	return reg.R[i&7]
}

// Set stores value into general register i. The index is masked to 0-7.
func (reg *Registers) Set(i uint16, value uint16) {
	reg.R[i&7] = value
}

// SetFlags refreshes the condition flags from value: FLAG_NEG when bit 15
// is set, FLAG_ZRO when the value is zero, FLAG_POS otherwise.
func (reg *Registers) SetFlags(value uint16) {
	switch {
	case value == 0:
		reg.Cond = FLAG_ZRO
	case (value >> 15) != 0:
		reg.Cond = FLAG_NEG
	default:
		reg.Cond = FLAG_POS
	}
}
