package tokenizer

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

type Symbol byte

const (
	INC        = Symbol('+')
	DEC        = Symbol('-')
	RIGHT      = Symbol('>')
	LEFT       = Symbol('<')
	LOOP_OPEN  = Symbol('[')
	LOOP_CLOSE = Symbol(']')
	OUTPUT     = Symbol('.')
	INPUT      = Symbol(',')
)

func (s Symbol) String() string {
	return string(rune(s))
}

var symbols = []rune{
	'+', '-',
	'<', '>',
	'[', ']',
	'.', ',',
}

func IsSymbol(char rune) bool {
	return slices.Contains(symbols, char)
}

// Sanitizer yields the recognized symbols of its input, in order, dropping
// everything else.
type Sanitizer struct {
	input *bufio.Reader
}

func NewSanitizer(input io.Reader) *Sanitizer {
	return &Sanitizer{input: bufio.NewReader(input)}
}

func (s *Sanitizer) Next() (Symbol, error) {
	for {
		char, _, err := s.input.ReadRune()
		if err != nil {
			return 0, err
		}
		if IsSymbol(char) {
			return Symbol(char), nil
		}
	}
}

func Sanitize(source string) string {
	var out strings.Builder
	for _, char := range source {
		if IsSymbol(char) {
			out.WriteRune(char)
		}
	}
	return out.String()
}
