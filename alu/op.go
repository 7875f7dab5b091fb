package alu

// Op is an ALU operation code.
type Op uint8

const (
	NOP = Op(0x00) // No operation. Sentinel for invalid input.
	OR  = Op(0x01) // Bitwise OR.
	AND = Op(0x02) // Bitwise AND.
	XOR = Op(0x03) // Bitwise XOR.
	ADD = Op(0x04) // Addition.
	SUB = Op(0x05) // Subtraction.
)

// nameMap is a map of operation names to operation codes.
var nameMap = map[string]Op{
	"OR":  OR,
	"AND": AND,
	"XOR": XOR,
	"ADD": ADD,
	"SUB": SUB,
}

// String returns the instruction name of the operation, or "Unknown"
// for any unrecognized code.
func (op Op) String() string {
	switch op {
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	default:
		return "Unknown"
	}
}

// Symbol returns the operator of the operation as text, or "Unknown"
// for any unrecognized code.
func (op Op) Symbol() string {
	switch op {
	case OR:
		return " | "
	case AND:
		return " & "
	case XOR:
		return " ^ "
	case ADD:
		return " + "
	case SUB:
		return " - "
	default:
		return "Unknown"
	}
}

// Valid returns true if the operation can be dispatched to Calculate.
func (op Op) Valid() bool {
	return op >= OR && op <= SUB
}

// ParseOp returns the operation code for an instruction name. The
// match is case-sensitive; any other text maps to NOP.
func ParseOp(name string) Op {
	op, ok := nameMap[name]
	if !ok {
		return NOP
	}

	return op
}
