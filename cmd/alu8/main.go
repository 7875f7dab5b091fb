// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/report"
	"github.com/ezrec/alu8/shell"
	"github.com/ezrec/alu8/translate"
)

var f = translate.From

// demos are the demonstration calculations printed before user input
// commences. The bytes 156 and 251 are -100 and -5.
var demos = [](struct {
	op   alu.Op
	a, b uint8
}){
	{alu.ADD, 100, 50},
	{alu.SUB, 156, 50},
	{alu.AND, 0x24, 1 << 5},
	{alu.OR, 0x20, 1 << 0},
	{alu.ADD, 251, 10},
}

func main() {
	var input string
	var output string
	var quiet bool

	flag.StringVar(&input, "i", "-", "Calculation input")
	flag.StringVar(&output, "o", "-", "Report output")
	flag.BoolVar(&quiet, "q", false, "Skip the demonstration calculations")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	sh := &shell.Shell{}

	if input == "-" {
		sh.Input = os.Stdin
		sh.Prompt = term.IsTerminal(int(os.Stdin.Fd()))
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		sh.Input = inf
	}

	if output == "-" {
		sh.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		sh.Output = ouf
	}

	if !quiet {
		fmt.Fprintf(sh.Output, "%v\n\n", f("Five examples of ALU calculations are printed below!"))
		for _, demo := range demos {
			fmt.Fprintf(sh.Output, "%v\n", report.Calculate(demo.op, demo.a, demo.b))
		}
	}

	err := sh.Run()
	if err != nil {
		log.Fatal(err)
	}
}
