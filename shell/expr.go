package shell

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parseOperand parses an operand as an integer in any Go base, falling
// back to constant expression evaluation for input like `1 << 5`.
func parseOperand(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err == nil {
		return
	}

	return evalExpr(word)
}

// evalExpr does starlark evaluation of a constant operand expression.
func evalExpr(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int64
	return
}
