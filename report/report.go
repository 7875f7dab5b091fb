// Package report renders ALU calculations as human-readable text.
package report

import (
	"fmt"
	"strings"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/translate"
)

var f = translate.From

// rule is the separator line around each report.
var rule = strings.Repeat("-", 80)

// Report captures a single ALU calculation for display.
type Report struct {
	Op     alu.Op     // Operation performed.
	A      uint8      // First operand.
	B      uint8      // Second operand.
	Result uint8      // Truncated 8-bit result.
	Status alu.Status // Status register after the calculation.
}

// Calculate performs the calculation and captures the result and
// status flags for display.
func Calculate(op alu.Op, a, b uint8) (rep Report) {
	rep = Report{
		Op: op,
		A:  a,
		B:  b,
	}
	rep.Result = alu.Calculate(op, a, b, &rep.Status)

	return
}

// String renders the report: the instruction name, the signed decimal
// equation, the 8-bit binary equation, and the status flags in
// S,N,Z,V,C order.
//
// The operands are interpreted by their own sign bits, while the
// result is interpreted by the S flag, so an overflowed result still
// reads with its correct sign.
func (rep Report) String() (text string) {
	text += rule + "\n"
	text += f("Instruction: %v", rep.Op) + "\n"
	text += f("Decimal    : %v", fmt.Sprintf("%v%v%v = %v",
		alu.Signed(rep.A), rep.Op.Symbol(), alu.Signed(rep.B),
		rep.Status.Signed(rep.Result))) + "\n"
	text += f("Binary     : %v", fmt.Sprintf("%08b%v%08b = %08b",
		rep.A, rep.Op.Symbol(), rep.B, rep.Result)) + "\n"
	text += f("Status bits: SNZVC = %v", rep.Status) + "\n"
	text += rule + "\n"

	return
}
