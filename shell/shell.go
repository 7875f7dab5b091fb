// Package shell implements the interactive terminal loop for the ALU
// emulator. It reads an operation and two byte operands line by line,
// re-prompting until the input is valid, and prints a report for each
// calculation. The calculation engine itself never sees invalid input.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/report"
)

// Shell is the interactive input layer in front of the ALU.
type Shell struct {
	Input  io.Reader // Line-oriented calculation input.
	Output io.Writer // Report (and prompt) output.
	Prompt bool      // If set, prints a prompt ahead of each read.

	scanner *bufio.Scanner
}

// say prints a line of user-facing text.
func (sh *Shell) say(text string) {
	fmt.Fprintf(sh.Output, "%v\n", text)
}

// readLine reads the next input line, trimmed of surrounding space.
// Returns io.EOF when the input is exhausted.
func (sh *Shell) readLine() (line string, err error) {
	if sh.scanner == nil {
		sh.scanner = bufio.NewScanner(sh.Input)
	}

	if !sh.scanner.Scan() {
		err = sh.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = strings.TrimSpace(sh.scanner.Text())
	return
}

// ReadOp reads an operation entered on the input. If an invalid
// operation is entered, the operation has to be entered again.
func (sh *Shell) ReadOp() (op alu.Op, err error) {
	if sh.Prompt {
		sh.say(f("Enter an operation to perform (OR, AND, XOR, ADD or SUB):"))
	}

	for {
		var line string
		line, err = sh.readLine()
		if err != nil {
			return
		}

		op = alu.ParseOp(line)
		if op.Valid() {
			return
		}

		sh.say(f("%v, try again!", ErrUnknownOp(line)))
	}
}

// ReadByte reads a byte operand entered on the input. Operands may be
// written in any base (`36`, `0x24`, `0b100100`) or as a constant
// expression (`1 << 5`); negative values down to -128 are taken as
// their two's-complement byte. If an invalid operand is entered, the
// operand has to be entered again.
func (sh *Shell) ReadByte() (value byte, err error) {
	for {
		var line string
		line, err = sh.readLine()
		if err != nil {
			return
		}

		parsed, perr := parseOperand(line)
		if perr == nil && (parsed < -128 || parsed > 255) {
			perr = ErrByteRange(parsed)
		}
		if perr == nil {
			value = uint8(parsed)
			return
		}

		sh.say(f("%v, try again!", perr))
	}
}

// Calculate reads an operation and two operands to calculate with the
// ALU, and prints the result along with the SNZVC status bits.
func (sh *Shell) Calculate() (err error) {
	op, err := sh.ReadOp()
	if err != nil {
		return
	}

	if sh.Prompt {
		sh.say(f("Enter the first operand (0 - 255):"))
	}
	a, err := sh.ReadByte()
	if err != nil {
		return
	}

	if sh.Prompt {
		sh.say(f("Enter the second operand (0 - 255):"))
	}
	b, err := sh.ReadByte()
	if err != nil {
		return
	}

	fmt.Fprintf(sh.Output, "%v\n", report.Calculate(op, a, b))
	return
}

// Run loops Calculate until the input is exhausted.
func (sh *Shell) Run() (err error) {
	for {
		err = sh.Calculate()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return
		}
	}
}
