package alu

import (
	"github.com/ezrec/alu8/reg"
)

// Calculate performs the operation on the two operands and returns the
// truncated 8-bit result. The SNZVC flags of the referenced status
// register are updated in accordance with the result; any prior flag
// state is cleared first.
//
// The intermediate result is widened to 16 bits so that the carry-out
// of an 8-bit operation remains readable at bit 8. During subtraction
// a borrow wraps the intermediate by +256 before the flags are
// derived, matching the two's-complement convention of the modeled
// hardware. For instance -100 - 50 truncates to -150 + 256 = 106
// (0110 0110): N is cleared, but the operand signs differ and the
// result sign matches the subtrahend, so V is set and S = N ^ V
// correctly reports a negative result.
//
// Calculate is specified only for OR, AND, XOR, ADD and SUB. The
// caller validates operation codes; see Op.Valid.
func Calculate(operation Op, a, b uint8, sr *Status) uint8 {
	var result uint16
	sr.Reset()

	switch operation {
	case OR:
		result = uint16(a | b)
	case AND:
		result = uint16(a & b)
	case XOR:
		result = uint16(a ^ b)
	case ADD:
		result = uint16(a) + uint16(b)

		if (reg.Read(a, 7) == reg.Read(b, 7)) && (reg.Read(a, 7) != reg.Read(uint8(result), 7)) {
			sr.Set(V)
		}
	case SUB:
		result = uint16(a) - uint16(b)

		if a < b {
			result += 256
		}

		if (reg.Read(a, 7) != reg.Read(b, 7)) && (reg.Read(b, 7) == reg.Read(uint8(result), 7)) {
			sr.Set(V)
		}
	}

	if reg.Read(result, 8) != 0 {
		sr.Set(C)
	}
	if result == 0 {
		sr.Set(Z)
	}
	if reg.Read(result, 7) != 0 {
		sr.Set(N)
	}
	if sr.Test(N) != sr.Test(V) {
		sr.Set(S)
	}

	return uint8(result)
}
