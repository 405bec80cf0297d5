package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mindjuice/mindjuice"
)

type parseError struct {
	fname, contents string
	err             error
}

func (err *parseError) Error() string {
	var offset int
	var rb *mindjuice.UnbalancedRightBracketError
	var lb *mindjuice.UnbalancedLeftBracketError
	if errors.As(err.err, &rb) {
		offset = rb.Offset
	} else if errors.As(err.err, &lb) {
		offset = lb.Offset
	} else {
		return err.err.Error()
	}
	linestr, line, column := getLineByOffset(err.contents, offset)
	if err.fname != "<arg>" || containsNewline(err.contents) {
		return fmt.Sprintf("invalid program: %s:%d\n%s  %s",
			err.fname, line, formatLineInfo(linestr, line, column), err.err)
	}
	return fmt.Sprintf("invalid program: %s\n    %s\n    %*c  %s",
		err.contents, linestr, column+1, '^', err.err)
}

func getLineByOffset(str string, offset int) (linestr string, line, column int) {
	if offset > len(str) {
		offset = len(str)
	}
	line = 1 + strings.Count(str[:offset], "\n")
	start := strings.LastIndexByte(str[:offset], '\n') + 1
	linestr = str[start:]
	if i := indexNewline(linestr); i >= 0 {
		linestr = linestr[:i]
	}
	// Comment text may contain wide runes, so the caret column is the
	// display width of the prefix, not its byte length.
	column = runewidth.StringWidth(str[start:offset])
	return
}

func formatLineInfo(linestr string, line, column int) string {
	l := strconv.Itoa(line)
	return fmt.Sprintf("    %s | %s\n    %*c", l, linestr, column+len(l)+4, '^')
}

// Faster than strings.ContainsAny(str, "\r\n").
func containsNewline(str string) bool {
	return strings.IndexByte(str, '\n') >= 0 ||
		strings.IndexByte(str, '\r') >= 0
}

// Faster than strings.IndexAny(str, "\r\n").
func indexNewline(str string) (i int) {
	if i = strings.IndexByte(str, '\n'); i >= 0 {
		str = str[:i]
	}
	if j := strings.IndexByte(str, '\r'); j >= 0 {
		i = j
	}
	return
}
