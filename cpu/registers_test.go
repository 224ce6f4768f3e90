package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_GetSet(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for n := range uint16(8) {
		reg.Set(n, 0x1000+n)
	}

	for n := range uint16(8) {
		assert.Equal(0x1000+n, reg.Get(n))
	}

	// Indexes are masked to the register bank size.
	reg.Set(9, 0xbeef)
	assert.Equal(uint16(0xbeef), reg.R[1])
	assert.Equal(uint16(0xbeef), reg.Get(9))
	assert.Equal(uint16(0x1007), reg.Get(15))
}

func TestRegisters_SetFlags(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for v := range uint32(1 << 16) {
		value := uint16(v)
		reg.SetFlags(value)

		var expect Flag
		switch {
		case value == 0:
			expect = FLAG_ZRO
		case value >= 0x8000:
			expect = FLAG_NEG
		default:
			expect = FLAG_POS
		}

		if !assert.Equal(expect, reg.Cond, "value 0x%04x", value) {
			break
		}
	}
}

func TestFlag_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		flag Flag
		text string
	}){
		{"none", Flag(0), "-"},
		{"pos", FLAG_POS, "p"},
		{"zro", FLAG_ZRO, "z"},
		{"neg", FLAG_NEG, "n"},
		{"all", FLAG_NEG | FLAG_ZRO | FLAG_POS, "nzp"},
		{"pair", FLAG_NEG | FLAG_POS, "np"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.flag.String(), entry.name)
	}
}
