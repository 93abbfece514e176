package analyzer

import (
	"io"
	"strings"

	"github.com/hlmerscher/bf2c-go/csrc"
	"github.com/hlmerscher/bf2c-go/engine"
	"github.com/hlmerscher/bf2c-go/tokenizer"
	"github.com/hlmerscher/bf2c-go/writer"
)

type Result struct {
	Tokens int
	Lines  int
	State  engine.State
}

// Balanced reports whether every loop opened was closed and no close came
// before its open.
func (r Result) Balanced() bool {
	initial := engine.InitialState().Level
	return r.State.Level == initial && r.State.Lowest >= initial
}

// Compile translates the program read from input into C source written to
// out. Only read errors are returned; malformed nesting is not an error.
func Compile(input io.Reader, out *strings.Builder) (Result, error) {
	tk := tokenizer.New(input)

	cw := csrc.New()
	compiler := engine.New(cw)
	st, err := compiler.Program(&tk)
	if err != nil {
		return Result{}, err
	}

	lines := cw.Lines()
	err = writer.Output(out, lines)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tokens: tk.Read,
		Lines:  len(lines),
		State:  st,
	}, nil
}
