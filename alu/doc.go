// Package alu implements an 8-bit Arithmetic Logic Unit.
//
// The ALU performs one of five operations (OR, AND, XOR, ADD, SUB) on
// two 8-bit operands and updates the SNZVC flags of a status register:
//
//   - S (Signed)  : set if the result is negative with overflow considered, S = N ^ V.
//   - N (Negative): set if bit 7 of the result is set.
//   - Z (Zero)    : set if the result is zero.
//   - V (Overflow): set if signed overflow occurred.
//   - C (Carry)   : set if bit 8 of the widened result is set.
//
// The flags match the status register semantics of a simple
// microcontroller, where unsigned overflow during addition sets the
// carry bit and signed overflow is detected from the operand and
// result sign bits.
package alu
