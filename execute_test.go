package mindjuice

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	testCases := []struct {
		name          string
		src           string
		input         string
		maxIterations uint64
		expected      string
		cond          TerminationCondition
	}{
		{
			name:          "empty program",
			src:           "",
			maxIterations: 1,
			cond:          AllInstructionsFinished,
		},
		{
			name:          "zero budget",
			src:           "+",
			maxIterations: 0,
			cond:          MaximumIterationsReached,
		},
		{
			name:          "budget exhausted mid program",
			src:           "+[]",
			maxIterations: 100,
			cond:          MaximumIterationsReached,
		},
		{
			name:          "budget exactly sufficient",
			src:           "+++",
			maxIterations: 4,
			cond:          AllInstructionsFinished,
		},
		{
			name:          "echo one byte",
			src:           ",.",
			input:         "A",
			maxIterations: 10,
			expected:      "A",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "cell underflow wraps",
			src:           "-.",
			maxIterations: 10,
			expected:      "\xff",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "cell overflow wraps",
			src:           strings.Repeat("+", 256) + ".",
			maxIterations: 300,
			expected:      "\x00",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "pointer wraps moving left from zero",
			src:           "<-.",
			maxIterations: 10,
			expected:      "\xff",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "pointer wraps moving right from last cell",
			src:           "<+>+.",
			maxIterations: 10,
			expected:      "\x01",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "skipped loop body",
			src:           "[.].",
			maxIterations: 10,
			expected:      "\x00",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "countdown loop",
			src:           "+++[-]+.",
			maxIterations: 100,
			expected:      "\x01",
			cond:          AllInstructionsFinished,
		},
		{
			name:          "hello world",
			src:           helloWorld,
			maxIterations: 30000000,
			expected:      "Hello World!\n",
			cond:          AllInstructionsFinished,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			insts, err := Parse(tc.src)
			require.NoError(t, err)
			var buf bytes.Buffer
			cond, err := Execute(insts, &buf, strings.NewReader(tc.input), tc.maxIterations)
			require.NoError(t, err)
			assert.Equal(t, tc.cond, cond)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestExecuteInputEOF(t *testing.T) {
	insts, err := Parse(",")
	require.NoError(t, err)
	_, err = Execute(insts, io.Discard, bytes.NewReader(nil), 10)
	assert.Equal(t, io.EOF, err)
}

func TestExecuteInputPolling(t *testing.T) {
	insts, err := Parse(",.")
	require.NoError(t, err)
	var buf bytes.Buffer
	cond, err := Execute(insts, &buf, &pollReader{delay: 3, b: 'A'}, 10)
	require.NoError(t, err)
	assert.Equal(t, AllInstructionsFinished, cond)
	assert.Equal(t, "A", buf.String())
}

func TestExecuteOutputError(t *testing.T) {
	insts, err := Parse("+.")
	require.NoError(t, err)
	errTest := errors.New("write failed")
	_, err = Execute(insts, &errWriter{err: errTest}, bytes.NewReader(nil), 10)
	assert.Equal(t, errTest, err)
}

func TestExecuteInputError(t *testing.T) {
	insts, err := Parse(",")
	require.NoError(t, err)
	errTest := errors.New("read failed")
	_, err = Execute(insts, io.Discard, &errReader{err: errTest}, 10)
	assert.Equal(t, errTest, err)
}

func TestExecuteSharedInstructions(t *testing.T) {
	insts, err := Parse("++[->+<]>.")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		cond, err := Execute(insts, &buf, bytes.NewReader(nil), 1000)
		require.NoError(t, err)
		assert.Equal(t, AllInstructionsFinished, cond)
		assert.Equal(t, "\x02", buf.String())
	}
}

func TestTerminationConditionString(t *testing.T) {
	assert.Equal(t, "maximum iterations reached", MaximumIterationsReached.String())
	assert.Equal(t, "finished normally", AllInstructionsFinished.String())
}

func TestDebugTrace(t *testing.T) {
	defer func(b bool, w io.Writer) { debug, debugOut = b, w }(debug, debugOut)
	var buf bytes.Buffer
	debug, debugOut = true, &buf
	insts, err := Parse("+[-].")
	require.NoError(t, err)
	_, err = Execute(insts, io.Discard, bytes.NewReader(nil), 100)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "jumpleft")
	assert.Contains(t, buf.String(), "increment")
}

// pollReader yields (0, nil) delay times before producing a byte.
type pollReader struct {
	delay int
	b     byte
}

func (r *pollReader) Read(bs []byte) (int, error) {
	if r.delay > 0 {
		r.delay--
		return 0, nil
	}
	bs[0] = r.b
	return 1, nil
}

type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}
