package csrc

import (
	"fmt"

	"github.com/hlmerscher/bf2c-go/logger"
	"github.com/hlmerscher/bf2c-go/tokenizer"
)

// Line is one C statement and the loop depth it is emitted at.
type Line struct {
	Text  string
	Level int
}

type arithmeticOp struct {
	target string
	op     string
}

var arithmeticOpsTable = map[tokenizer.Symbol]arithmeticOp{
	tokenizer.INC:   {"T[P]", "+"},
	tokenizer.DEC:   {"T[P]", "-"},
	tokenizer.RIGHT: {"P", "+"},
	tokenizer.LEFT:  {"P", "-"},
}

type Writer struct {
	lines []Line
}

func (w *Writer) Lines() []Line {
	return w.lines
}

func (w *Writer) write(text string, level int) {
	w.lines = append(w.lines, Line{Text: text, Level: level})
}

// WriteArithmetic adjusts the current cell or the pointer by n. A single
// step uses the unary form.
func (w *Writer) WriteArithmetic(symbol tokenizer.Symbol, n, level int) error {
	val, ok := arithmeticOpsTable[symbol]
	if !ok {
		logger.Printf("WARNING: ignoring arithmetic symbol %q\n", symbol)
		return fmt.Errorf("not an arithmetic symbol %q", symbol)
	}

	if n == 1 {
		w.write(fmt.Sprintf("%s%s%s;", val.target, val.op, val.op), level)
		return nil
	}
	w.write(fmt.Sprintf("%s %s= %d;", val.target, val.op, n), level)
	return nil
}

func (w *Writer) WriteSync(level int) {
	w.write("U();", level)
}

func (w *Writer) WriteLoopOpen(level int) {
	w.write("while (T[P] != 0) {", level)
}

func (w *Writer) WriteLoopClose(level int) {
	w.write("}", level)
}

func (w *Writer) WriteFlush(level int) {
	w.write("F();", level)
}

func (w *Writer) WriteOutput(level int) {
	w.write("O();", level)
}

func (w *Writer) WriteInput(level int) {
	w.write("I();", level)
}

func New() *Writer {
	return &Writer{lines: make([]Line, 0)}
}
