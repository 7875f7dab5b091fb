// Package reg provides single-bit operations on unsigned registers.
//
// The functions are generic over the register width so that a widened
// intermediate (for example the uint16 holding an 8-bit ALU result) can
// expose its carry-out bit to Read.
package reg

// Unsigned is any unsigned integer register type.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Set sets a bit in the register without affecting other bits.
func Set[T Unsigned](reg *T, bit uint8) {
	*reg |= 1 << bit
}

// Clear clears a bit in the register without affecting other bits.
func Clear[T Unsigned](reg *T, bit uint8) {
	*reg &^= 1 << bit
}

// Read reads a bit from the register. The return value is nonzero if
// the bit is high, and zero otherwise.
func Read[T Unsigned](reg T, bit uint8) T {
	return reg & (1 << bit)
}
