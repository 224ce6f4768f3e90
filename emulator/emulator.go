package emulator

import (
	"log"

	"github.com/jorbush/lc3vm/cpu"
	"github.com/jorbush/lc3vm/io"
)

// Emulator state. Machine + console device.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the machine simulation.
}

// NewEmulator creates a new emulator attached to a console device.
func NewEmulator(console io.Console) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(console),
	}

	return
}

// Load stores a program image into memory and points the program
// counter at its origin.
func (emu *Emulator) Load(img *Image) {
	emu.Cpu.Mem.Load(img.Origin, img.Words)
	emu.Cpu.Reg.PC = img.Origin

	if emu.Verbose {
		log.Printf("emulator: loaded %d words at 0x%04x", len(img.Words), img.Origin)
	}
}

// LoadFile loads a program image from a file.
func (emu *Emulator) LoadFile(path string) (err error) {
	img, err := LoadImageFile(path)
	if err != nil {
		return
	}

	emu.Load(img)

	return
}

// Step performs a single instruction step of the emulator.
func (emu *Emulator) Step() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	at := emu.Cpu.Reg.PC
	defer func() {
		if err != nil {
			err = &ErrRuntime{PC: at, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run steps the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	done := false
	for !done && err == nil {
		done, err = emu.Step()
	}

	return
}
