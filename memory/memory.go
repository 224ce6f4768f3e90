package memory

import (
	"iter"
)

// MEMORY_SIZE is the number of addressable words.
const MEMORY_SIZE = 1 << 16

// Memory-mapped keyboard registers.
const (
	// KBSR is the keyboard status register.
	KBSR = uint16(0xfe00)
	// KBDR is the keyboard data register.
	KBDR = uint16(0xfe02)

	// KBSR_READY is the key-available bit of the status register.
	KBSR_READY = uint16(1 << 15)
)

// Keyboard is the key source polled through the keyboard status register.
type Keyboard interface {
	// Poll consumes a pending key, if any.
	Poll() (key byte, ok bool)
}

// Memory is the 16-bit word-addressed store, with the keyboard device
// mapped at KBSR/KBDR.
type Memory struct {
	Keyboard Keyboard
	Cells    [MEMORY_SIZE]uint16
}

// Read returns the word at addr. Reading KBSR polls the keyboard and
// latches any pending key into KBDR.
func (mem *Memory) Read(addr uint16) (value uint16) {
	if addr == KBSR {
		mem.poll()
	}

	value = mem.Cells[addr]

	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value uint16) {
	mem.Cells[addr] = value
}

func (mem *Memory) poll() {
	var key byte
	var ok bool

	if mem.Keyboard != nil {
		key, ok = mem.Keyboard.Poll()
	}

	if ok {
		mem.Cells[KBSR] = KBSR_READY
		mem.Cells[KBDR] = uint16(key)
	} else {
		mem.Cells[KBSR] = 0
	}
}

// Scan returns an iterator over consecutive words starting at origin,
// stopping before the first zero word. The walk reads cells directly,
// without polling device registers.
func (mem *Memory) Scan(origin uint16) iter.Seq[uint16] {
	return func(yield func(value uint16) bool) {
		for at := origin; mem.Cells[at] != 0; at++ {
			if !yield(mem.Cells[at]) {
				return
			}
		}
	}
}

// Load stores words at origin, origin+1, ... (wrapping).
func (mem *Memory) Load(origin uint16, words []uint16) {
	at := origin
	for _, value := range words {
		mem.Cells[at] = value
		at++
	}
}
