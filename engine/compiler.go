package engine

import (
	"errors"
	"io"

	"github.com/hlmerscher/bf2c-go/csrc"
	"github.com/hlmerscher/bf2c-go/logger"
	"github.com/hlmerscher/bf2c-go/tokenizer"
)

// State is threaded through every translation step.
type State struct {
	Level     int
	IOPending bool
	// Lowest is the smallest level any loop close has reached.
	Lowest int
}

func InitialState() State {
	return State{Level: 1, Lowest: 1}
}

type Compiler struct {
	cw *csrc.Writer
}

// Program translates every token left in tk and returns the final state.
func (c *Compiler) Program(tk *tokenizer.Tokenizer) (State, error) {
	st := InitialState()

	for {
		token, err := tk.Advance()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}

		next, err := c.Token(st, token)
		if errors.Is(err, notInstruction) {
			logger.Printf("WARNING: ignoring token %s\n", token)
			continue
		}
		if err != nil {
			return st, err
		}
		st = next
	}
}

func (c *Compiler) Token(st State, token tokenizer.Token) (State, error) {
	switch token.Symbol {
	case tokenizer.INC, tokenizer.DEC, tokenizer.RIGHT, tokenizer.LEFT:
		return c.Arithmetic(st, token)
	case tokenizer.LOOP_OPEN:
		return c.LoopOpen(st, token.Count), nil
	case tokenizer.LOOP_CLOSE:
		return c.LoopClose(st, token.Count), nil
	case tokenizer.OUTPUT:
		return c.Output(st, token.Count), nil
	case tokenizer.INPUT:
		return c.Input(st, token.Count), nil
	}
	return st, notInstruction
}

func (c *Compiler) Arithmetic(st State, token tokenizer.Token) (State, error) {
	err := c.cw.WriteArithmetic(token.Symbol, token.Count, st.Level)
	if err != nil {
		return st, err
	}
	return st, nil
}

// LoopOpen opens n nested loops over the same cell.
func (c *Compiler) LoopOpen(st State, n int) State {
	c.cw.WriteSync(st.Level)
	for i := 0; i < n; i++ {
		c.cw.WriteLoopOpen(st.Level)
		st.Level++
	}
	return st
}

// LoopClose closes n loops and flushes once if I/O happened since the last
// flush. Unbalanced closes drive the level below 1 unchecked.
func (c *Compiler) LoopClose(st State, n int) State {
	c.cw.WriteSync(st.Level)
	for i := 0; i < n; i++ {
		st.Level--
		c.cw.WriteLoopClose(st.Level)
	}
	if st.Level < st.Lowest {
		st.Lowest = st.Level
	}

	if st.IOPending {
		st.IOPending = false
		c.cw.WriteFlush(st.Level)
	}
	return st
}

func (c *Compiler) Output(st State, n int) State {
	st.IOPending = true
	for i := 0; i < n; i++ {
		c.cw.WriteOutput(st.Level)
	}
	return st
}

func (c *Compiler) Input(st State, n int) State {
	st.IOPending = true
	for i := 0; i < n; i++ {
		c.cw.WriteInput(st.Level)
	}
	return st
}

func New(cw *csrc.Writer) Compiler {
	return Compiler{cw: cw}
}
