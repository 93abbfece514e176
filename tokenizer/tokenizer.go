package tokenizer

import (
	"errors"
	"fmt"
	"io"
)

var EmptyToken = Token{}

type Token struct {
	Symbol Symbol
	Count  int
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %d)", t.Symbol, t.Count)
}

func New(input io.Reader) Tokenizer {
	return Tokenizer{
		input:   NewSanitizer(input),
		Current: EmptyToken,
	}
}

// Tokenizer merges runs of identical symbols into tokens. It reads its input
// once and cannot be rewound.
type Tokenizer struct {
	input      *Sanitizer
	pending    Symbol
	hasPending bool
	Current    Token
	// Read counts the tokens returned so far.
	Read int
}

func (tk *Tokenizer) Advance() (Token, error) {
	symbol, err := tk.first()
	if err != nil {
		return EmptyToken, err
	}

	count := 1
	for {
		next, err := tk.input.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return EmptyToken, err
		}
		if next != symbol {
			tk.pending, tk.hasPending = next, true
			break
		}
		count++
	}

	tk.Current = Token{Symbol: symbol, Count: count}
	tk.Read++
	return tk.Current, nil
}

func (tk *Tokenizer) first() (Symbol, error) {
	if tk.hasPending {
		tk.hasPending = false
		return tk.pending, nil
	}
	return tk.input.Next()
}

// Tokens drains input into a slice. Empty input gives no tokens.
func Tokens(input io.Reader) ([]Token, error) {
	tk := New(input)

	tokens := make([]Token, 0)
	for {
		token, err := tk.Advance()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}
