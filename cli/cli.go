package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/mattn/go-isatty"

	"github.com/mindjuice/mindjuice"
)

const name = "mindjuice"

const version = "0.9.0"

var revision = "HEAD"

const (
	exitCodeOK = iota
	exitCodeErr
	exitCodeFlagParseErr
	exitCodeMaxIterations
)

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer
}

func (cli *cli) run(args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.errStream)
	fs.Usage = func() {
		fs.SetOutput(cli.outStream)
		fmt.Fprintf(cli.outStream, `%[1]s - brainfuck interpreter

Version: %s (rev: %s/%s)

Synopsis:
    %% %[1]s -e ',[.,]' <input.txt
    %% %[1]s program.bf

The program reads its input from stdin and writes its output to stdout.

Options:
`, name, version, revision, runtime.Version())
		fs.PrintDefaults()
	}
	var (
		expr        string
		file        string
		maxIter     uint64
		dump        bool
		verbose     bool
		showVersion bool
	)
	fs.StringVar(&expr, "e", "", "program source text")
	fs.StringVar(&file, "f", "", "read program source from the file")
	fs.Uint64Var(&maxIter, "n", 30000000, "maximum number of instructions to execute")
	fs.BoolVar(&dump, "dump", false, "print the compiled instructions as YAML and exit")
	fs.BoolVar(&verbose, "verbose", false, "print timing information to stderr")
	fs.BoolVar(&showVersion, "v", false, "print version")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitCodeOK
		}
		return exitCodeFlagParseErr
	}
	if showVersion {
		fmt.Fprintf(cli.outStream, "%s %s (rev: %s/%s)\n", name, version, revision, runtime.Version())
		return exitCodeOK
	}
	args = fs.Args()
	if expr == "" && file == "" {
		if len(args) == 0 {
			fs.Usage()
			return exitCodeFlagParseErr
		}
		file, args = args[0], args[1:]
	}
	if len(args) > 0 {
		fmt.Fprintf(cli.errStream, "%s: too many arguments\n", name)
		return exitCodeFlagParseErr
	}
	src, fname := expr, "<arg>"
	if expr == "" {
		bs, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
			return exitCodeErr
		}
		src, fname = string(bs), file
	}
	insts, err := mindjuice.Parse(src)
	if err != nil {
		fmt.Fprintf(cli.errStream, "%s: %s\n", name, &parseError{fname, src, err})
		return exitCodeErr
	}
	if dump {
		return cli.dumpInstructions(insts)
	}
	var start time.Time
	if verbose {
		start = time.Now()
		fmt.Fprintf(cli.errStream, "%s: started at %s\n",
			name, timefmt.Format(start, "%Y-%m-%d %H:%M:%S"))
	}
	out := &countingWriter{w: cli.outStream}
	cond, err := mindjuice.Execute(insts, out, cli.inStream, maxIter)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintf(cli.errStream, "%s: input exhausted\n", name)
		} else {
			fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		}
		return exitCodeErr
	}
	if f, ok := cli.outStream.(*os.File); ok && out.written > 0 && out.last != '\n' &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(cli.outStream)
	}
	if verbose {
		end := time.Now()
		fmt.Fprintf(cli.errStream, "%s: %s at %s (%s elapsed, %d bytes written)\n",
			name, cond, timefmt.Format(end, "%Y-%m-%d %H:%M:%S"), end.Sub(start), out.written)
	}
	if cond == mindjuice.MaximumIterationsReached {
		return exitCodeMaxIterations
	}
	return exitCodeOK
}
