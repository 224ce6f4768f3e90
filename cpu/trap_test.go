package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorbush/lc3vm/io"
)

type failConsole struct {
	io.Buffer
}

var errDisplay = errors.New("display broken")

func (fc *failConsole) Write(data []byte) (n int, err error) {
	return 0, errDisplay
}

func TestTrap_Getc(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{Keys: []byte{'G'}}
	cpu := NewCpu(console)
	cpu.Mem.Write(PC_START, 0xf020)

	err := cpu.Step()
	assert.NoError(err)

	assert.Equal(uint16('G'), cpu.Reg.Get(0))
	assert.Equal(FLAG_POS, cpu.Reg.Cond)
	assert.Equal(PC_START+1, cpu.Reg.Get(7))

	// No echo.
	assert.Equal("", console.Output.String())
}

func TestTrap_Out(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{}
	cpu := NewCpu(console)
	cpu.Reg.Set(0, 0x0141)
	cpu.Mem.Write(PC_START, 0xf021)

	err := cpu.Step()
	assert.NoError(err)

	// Low byte only.
	assert.Equal("A", console.Output.String())
}

func TestTrap_Puts(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{}
	cpu := NewCpu(console)

	text := "Hello World!"
	words := make([]uint16, 0, len(text)+1)
	for _, c := range text {
		words = append(words, uint16(c))
	}
	words = append(words, 0)
	cpu.Mem.Load(0x3100, words)

	cpu.Reg.Set(0, 0x3100)
	cpu.Mem.Write(PC_START, 0xf022)

	err := cpu.Step()
	assert.NoError(err)

	assert.Equal("Hello World!", console.Output.String())
}

func TestTrap_In(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{Keys: []byte{'q'}}
	cpu := NewCpu(console)
	cpu.Mem.Write(PC_START, 0xf023)

	err := cpu.Step()
	assert.NoError(err)

	assert.Equal(uint16('q'), cpu.Reg.Get(0))
	assert.Equal(FLAG_POS, cpu.Reg.Cond)

	// Prompt, then the echoed key.
	assert.Equal("Enter a character: q", console.Output.String())
}

func TestTrap_Putsp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		words []uint16
		text  string
	}){
		{"packed pair", []uint16{0x4848, 0}, "HH"},
		{"odd length", []uint16{0x6548, 0x6c6c, 0x006f, 0}, "Hello"},
		{"empty", []uint16{0}, ""},
	}

	for _, entry := range table {
		console := &io.Buffer{}
		cpu := NewCpu(console)
		cpu.Mem.Load(0x3100, entry.words)
		cpu.Reg.Set(0, 0x3100)
		cpu.Mem.Write(PC_START, 0xf024)

		err := cpu.Step()
		assert.NoError(err, entry.name)

		assert.Equal(entry.text, console.Output.String(), entry.name)
	}
}

func TestTrap_Halt(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{}
	cpu := NewCpu(console)
	cpu.Mem.Write(PC_START, 0xf025)

	err := cpu.Step()
	assert.NoError(err)

	assert.False(cpu.Running)
	assert.Equal(1, cpu.Ticks)
	assert.Equal("Halting the VM...\n", console.Output.String())
}

func TestTrap_Unknown(t *testing.T) {
	assert := assert.New(t)

	console := &io.Buffer{}
	cpu := NewCpu(console)
	cpu.Mem.Write(PC_START, 0xf026)

	err := cpu.Step()
	assert.ErrorIs(err, ErrUnknownTrap(0))
	assert.NotErrorIs(err, ErrConsole)

	// Machine state is left intact for inspection.
	assert.True(cpu.Running)
	assert.Equal(PC_START+1, cpu.Reg.Get(7))
}

func TestTrap_KeyEOF(t *testing.T) {
	assert := assert.New(t)

	// An exhausted console surfaces as an error, never a hang.
	cpu := NewCpu(&io.Buffer{})
	cpu.Mem.Write(PC_START, 0xf020)

	err := cpu.Step()
	assert.ErrorIs(err, ErrConsole)
	assert.ErrorIs(err, io.ErrKeyEOF)
}

func TestTrap_WriteError(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(&failConsole{})
	cpu.Reg.Set(0, 'A')
	cpu.Mem.Write(PC_START, 0xf021)

	err := cpu.Step()
	assert.ErrorIs(err, ErrConsole)
	assert.ErrorIs(err, errDisplay)
}
