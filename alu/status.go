package alu

import (
	"fmt"

	"github.com/ezrec/alu8/reg"
)

// Flag is a status register flag, valued as its bit position.
type Flag uint8

//go:generate go tool stringer -linecomment -type=Flag
const (
	C = Flag(0) // C
	V = Flag(1) // V
	Z = Flag(2) // Z
	N = Flag(3) // N
	S = Flag(4) // S
)

// flagMask covers the five SNZVC flag bits.
const flagMask = uint8((1 << S) | (1 << N) | (1 << Z) | (1 << V) | (1 << C))

// Status is the ALU status register, holding the SNZVC flags at bit
// positions 4 down to 0.
type Status uint8

// Set sets a flag without affecting other flags.
func (sr *Status) Set(flag Flag) {
	reg.Set((*uint8)(sr), uint8(flag))
}

// Clear clears a flag without affecting other flags.
func (sr *Status) Clear(flag Flag) {
	reg.Clear((*uint8)(sr), uint8(flag))
}

// Test returns true if the flag is set.
func (sr Status) Test(flag Flag) bool {
	return reg.Read(uint8(sr), uint8(flag)) != 0
}

// Reset clears all five SNZVC flags without affecting other bits.
func (sr *Status) Reset() {
	*sr &= ^Status(flagMask)
}

// String renders the five flags as a binary string in S,N,Z,V,C order.
func (sr Status) String() string {
	return fmt.Sprintf("%05b", uint8(sr)&flagMask)
}

// Signed interprets an ALU result using the S flag of the status
// register rather than the result's own sign bit. This yields the
// correct sign even when overflow has inverted bit 7 of the result.
func (sr Status) Signed(value uint8) int {
	if sr.Test(S) {
		return int(value) - 256
	}

	return int(value)
}

// Signed interprets a value as an 8-bit two's-complement number.
func Signed(value uint8) int {
	if reg.Read(value, 7) != 0 {
		return int(value) - 256
	}

	return int(value)
}
