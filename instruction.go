package mindjuice

import "fmt"

// Instruction is a single operation of a compiled program. Loop brackets
// are compiled into jumpleft/jumpright pairs whose targets refer to each
// other's position in the instruction sequence.
type Instruction struct {
	op opcode
	v  int
}

func (inst Instruction) String() string {
	switch inst.op {
	case opjumpleft, opjumpright:
		return fmt.Sprintf("%s %d", inst.op, inst.v)
	default:
		return inst.op.String()
	}
}

type opcode int

const (
	opmoveright opcode = iota
	opmoveleft
	opincrement
	opdecrement
	opoutput
	opinput
	opjumpleft
	opjumpright
)

func (op opcode) String() string {
	switch op {
	case opmoveright:
		return "moveright"
	case opmoveleft:
		return "moveleft"
	case opincrement:
		return "increment"
	case opdecrement:
		return "decrement"
	case opoutput:
		return "output"
	case opinput:
		return "input"
	case opjumpleft:
		return "jumpleft"
	case opjumpright:
		return "jumpright"
	default:
		panic(op)
	}
}
