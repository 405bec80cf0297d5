package mindjuice

import "io"

// memorySize is the fixed tape length. The memory pointer wraps modulo
// this on every move.
const memorySize = 32768

// TerminationCondition is the reason an execution stopped. Both
// conditions are successful outcomes, not errors.
type TerminationCondition int

const (
	// MaximumIterationsReached means the iteration budget ran out
	// while the program was still running.
	MaximumIterationsReached TerminationCondition = iota
	// AllInstructionsFinished means the program counter ran past the
	// end of the instruction sequence.
	AllInstructionsFinished
)

func (cond TerminationCondition) String() string {
	switch cond {
	case MaximumIterationsReached:
		return "maximum iterations reached"
	case AllInstructionsFinished:
		return "finished normally"
	default:
		panic(cond)
	}
}

// Execute runs an instruction sequence against a zeroed tape of
// memorySize cells, writing output bytes to output and reading input
// bytes from input, for at most maxIterations instruction dispatches.
// The only failures are I/O errors from output or input; they propagate
// immediately with nothing flushed. An input read returning (0, nil)
// means no data yet and is retried until a byte arrives, so an input
// source that keeps yielding zero bytes blocks execution forever; an
// exhausted source should return an error such as io.EOF instead.
func Execute(insts []Instruction, output io.Writer, input io.Reader, maxIterations uint64) (TerminationCondition, error) {
	var memory [memorySize]byte
	var pointer, pc int
	buf := make([]byte, 1)
	debugInstructions(insts)
	for i := uint64(0); i < maxIterations; i++ {
		if pc >= len(insts) {
			return AllInstructionsFinished, nil
		}
		inst := insts[pc]
		debugStep(pc, inst, pointer, memory[pointer])
		switch inst.op {
		case opmoveright:
			pointer = (pointer + 1) % memorySize
		case opmoveleft:
			pointer = (pointer + memorySize - 1) % memorySize
		case opincrement:
			memory[pointer]++
		case opdecrement:
			memory[pointer]--
		case opoutput:
			buf[0] = memory[pointer]
			if _, err := output.Write(buf); err != nil {
				return 0, err
			}
		case opinput:
			for {
				n, err := input.Read(buf)
				if err != nil {
					return 0, err
				}
				if n > 0 {
					memory[pointer] = buf[0]
					break
				}
				// no data yet, poll again
			}
		case opjumpleft:
			if memory[pointer] == 0 {
				pc = inst.v
				continue
			}
		case opjumpright:
			if memory[pointer] != 0 {
				pc = inst.v
				continue
			}
		default:
			panic(inst.op)
		}
		pc++
	}
	return MaximumIterationsReached, nil
}
