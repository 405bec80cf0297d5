package mindjuice

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	debug    bool
	debugOut io.Writer
)

func init() {
	if out := os.Getenv("MINDJUICE_DEBUG"); out != "" {
		debug = true
		if out == "stdout" {
			debugOut = os.Stdout
		} else {
			debugOut = os.Stderr
		}
	}
}

func debugInstructions(insts []Instruction) {
	if !debug {
		return
	}
	for i, inst := range insts {
		fmt.Fprintf(debugOut, "\t%d\t%s\n", i, inst)
	}
	fmt.Fprintln(debugOut, "\t"+strings.Repeat("-", 20))
}

func debugStep(pc int, inst Instruction, pointer int, cell byte) {
	if !debug {
		return
	}
	fmt.Fprintf(debugOut, "\t%d\t%s\t|\t%d\t%d\n", pc, formatInst(inst), pointer, cell)
}

func formatInst(inst Instruction) string {
	s := inst.String()
	if n := 16 - len(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}
