package mindjuice

import "io"

// defaultMaxIterations bounds Program.Run. Generous enough for typical
// programs while still guaranteeing termination.
const defaultMaxIterations = 30000000

// Program is a compiled brainfuck program.
type Program struct {
	insts []Instruction
}

// Compile parses src into a runnable Program.
func Compile(src string) (*Program, error) {
	insts, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return &Program{insts: insts}, nil
}

// Instructions returns a copy of the compiled instruction sequence.
func (p *Program) Instructions() []Instruction {
	insts := make([]Instruction, len(p.insts))
	copy(insts, p.insts)
	return insts
}

// Run executes the program with the default iteration budget. The
// compiled sequence is read-only during execution, so a Program may run
// any number of times, concurrently included; each run owns its tape.
func (p *Program) Run(output io.Writer, input io.Reader) (TerminationCondition, error) {
	return Execute(p.insts, output, input, defaultMaxIterations)
}

// RunWithMaxIterations executes the program with an explicit iteration
// budget.
func (p *Program) RunWithMaxIterations(output io.Writer, input io.Reader, maxIterations uint64) (TerminationCondition, error) {
	return Execute(p.insts, output, input, maxIterations)
}
