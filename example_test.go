package mindjuice_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/mindjuice/mindjuice"
)

func ExampleExecute() {
	insts, err := mindjuice.Parse("++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.")
	if err != nil {
		log.Fatalln(err)
	}
	var buf bytes.Buffer
	cond, err := mindjuice.Execute(insts, &buf, bytes.NewReader(nil), 30000000)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(cond)
	fmt.Print(buf.String())

	// Output:
	// finished normally
	// Hello World!
}

func ExampleCompile() {
	p, err := mindjuice.Compile(", read a byte . and echo it")
	if err != nil {
		log.Fatalln(err)
	}
	var buf bytes.Buffer
	if _, err := p.Run(&buf, strings.NewReader("A")); err != nil {
		log.Fatalln(err)
	}
	fmt.Println(buf.String())

	// Output:
	// A
}
