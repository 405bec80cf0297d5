package cli

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mindjuice/mindjuice"
)

type instructionListing struct {
	Index       int    `yaml:"index"`
	Instruction string `yaml:"instruction"`
}

func (cli *cli) dumpInstructions(insts []mindjuice.Instruction) int {
	xs := make([]instructionListing, len(insts))
	for i, inst := range insts {
		xs[i] = instructionListing{i, inst.String()}
	}
	var bs bytes.Buffer
	enc := yaml.NewEncoder(&bs)
	enc.SetIndent(2)
	if err := enc.Encode(xs); err != nil {
		fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	if _, err := cli.outStream.Write(bs.Bytes()); err != nil {
		fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	return exitCodeOK
}
