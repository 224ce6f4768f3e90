// Package cpu implements the LC-3 machine: register file, condition
// flags, instruction decode, and the execute engine.
//
// The machine has eight 16-bit general-purpose registers (r0-r7), a
// program counter, and three condition flags (negative, zero, positive)
// refreshed by every instruction that writes a general register. Sixteen
// opcodes cover arithmetic, memory access, and control flow; the trap
// opcode provides console I/O and halt services through an attached
// console device. The keyboard is also reachable from program code via
// the memory-mapped status and data registers.
package cpu
