package mindjuice

// Parse compiles brainfuck source into a flat instruction sequence. Loop
// bracket pairs are resolved into mutual jump targets in a single
// left-to-right pass, so execution needs no bracket matching. Characters
// other than the eight commands are skipped. Parse fails with
// *UnbalancedRightBracketError or *UnbalancedLeftBracketError when the
// brackets do not balance.
func Parse(src string) ([]Instruction, error) {
	// Positions of `[`s waiting for their `]`, innermost last.
	var pending []pendingOpen
	var insts []Instruction
	for offset, ch := range src {
		var inst Instruction
		switch ch {
		case '>':
			inst = Instruction{op: opmoveright}
		case '<':
			inst = Instruction{op: opmoveleft}
		case '+':
			inst = Instruction{op: opincrement}
		case '-':
			inst = Instruction{op: opdecrement}
		case '.':
			inst = Instruction{op: opoutput}
		case ',':
			inst = Instruction{op: opinput}
		case '[':
			pending = append(pending, pendingOpen{len(insts), offset})
			// Target 0 is a placeholder, overwritten when the
			// matching `]` is found.
			inst = Instruction{op: opjumpleft}
		case ']':
			if len(pending) == 0 {
				return nil, &UnbalancedRightBracketError{Offset: offset}
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			insts[open.pos].v = len(insts)
			inst = Instruction{op: opjumpright, v: open.pos}
		default:
			continue
		}
		insts = append(insts, inst)
	}
	if len(pending) > 0 {
		return nil, &UnbalancedLeftBracketError{Offset: pending[len(pending)-1].offset}
	}
	return insts, nil
}

type pendingOpen struct {
	pos    int // position in the instruction sequence
	offset int // byte offset in the source
}
