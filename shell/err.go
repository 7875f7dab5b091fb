package shell

import (
	"github.com/ezrec/alu8/translate"
)

var f = translate.From

// ErrUnknownOp indicates text that is not one of the five instruction names.
type ErrUnknownOp string

func (err ErrUnknownOp) Error() string {
	return f("'%v' is not an operation", string(err))
}

// ErrParseNumber indicates text that is neither a number nor an expression.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression indicates an operand expression that did not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrByteRange indicates an operand outside the 8-bit domain.
type ErrByteRange int64

func (err ErrByteRange) Error() string {
	return f("%v is out of byte range", int64(err))
}
