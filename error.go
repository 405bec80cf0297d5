package mindjuice

// UnbalancedRightBracketError reports a closing bracket with no pending
// opening bracket before it. Offset is the byte offset of the lone `]`
// in the source.
type UnbalancedRightBracketError struct {
	Offset int
}

func (err *UnbalancedRightBracketError) Error() string {
	return "expected matching `[` before `]`, found lone `]` first"
}

// UnbalancedLeftBracketError reports one or more opening brackets left
// unmatched at end of input. Offset is the byte offset of the innermost
// unclosed `[` in the source.
type UnbalancedLeftBracketError struct {
	Offset int
}

func (err *UnbalancedLeftBracketError) Error() string {
	return "unbalanced `[`: expected matching `]`, found end of input"
}
