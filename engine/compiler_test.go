package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/hlmerscher/bf2c-go/csrc"
	"github.com/hlmerscher/bf2c-go/tokenizer"
)

func compile(t *testing.T, input string) ([]csrc.Line, State) {
	t.Helper()

	cw := csrc.New()
	c := New(cw)
	tk := tokenizer.New(strings.NewReader(input))
	st, err := c.Program(&tk)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	return cw.Lines(), st
}

func countText(lines []csrc.Line, text string) int {
	var n int
	for _, line := range lines {
		if line.Text == text {
			n++
		}
	}
	return n
}

func expectLines(t *testing.T, expected, got []csrc.Line) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("line count wrong. expected=%d, got=%d\n%+v", len(expected), len(got), got)
	}
	for i, line := range got {
		if line != expected[i] {
			t.Fatalf("lines[%d] wrong. expected=%+v, got=%+v", i, expected[i], line)
		}
	}
}

func TestProgramEndToEnd(t *testing.T) {
	lines, st := compile(t, "++>,.<-")

	expectLines(t, []csrc.Line{
		{Text: "T[P] += 2;", Level: 1},
		{Text: "P++;", Level: 1},
		{Text: "I();", Level: 1},
		{Text: "O();", Level: 1},
		{Text: "P--;", Level: 1},
		{Text: "T[P]--;", Level: 1},
	}, lines)

	// no loop closed, so nothing flushed the pending output
	if !st.IOPending || st.Level != 1 {
		t.Fatalf("final state wrong. got=%+v", st)
	}
}

func TestProgramEmpty(t *testing.T) {
	for i, input := range []string{"", "no instructions here"} {
		lines, st := compile(t, input)
		if len(lines) != 0 {
			t.Fatalf("tests[%d] - expected no lines, got %+v", i, lines)
		}
		if st != InitialState() {
			t.Fatalf("tests[%d] - state wrong. expected=%+v, got=%+v", i, InitialState(), st)
		}
	}
}

func TestLoopNesting(t *testing.T) {
	lines, st := compile(t, "[[-]]")

	expectLines(t, []csrc.Line{
		{Text: "U();", Level: 1},
		{Text: "while (T[P] != 0) {", Level: 1},
		{Text: "while (T[P] != 0) {", Level: 2},
		{Text: "T[P]--;", Level: 3},
		{Text: "U();", Level: 3},
		{Text: "}", Level: 2},
		{Text: "}", Level: 1},
	}, lines)

	if st.Level != 1 {
		t.Fatalf("expected level 1, got %d", st.Level)
	}
}

func TestFlushElision(t *testing.T) {
	tests := []struct {
		input    string
		expected []csrc.Line
	}{
		{",[]", []csrc.Line{
			{Text: "I();", Level: 1},
			{Text: "U();", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 1},
			{Text: "U();", Level: 2},
			{Text: "}", Level: 1},
			{Text: "F();", Level: 1},
		}},
		{"[-]", []csrc.Line{
			{Text: "U();", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 1},
			{Text: "T[P]--;", Level: 2},
			{Text: "U();", Level: 2},
			{Text: "}", Level: 1},
		}},
		{"[.][-]", []csrc.Line{
			{Text: "U();", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 1},
			{Text: "O();", Level: 2},
			{Text: "U();", Level: 2},
			{Text: "}", Level: 1},
			{Text: "F();", Level: 1},
			{Text: "U();", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 1},
			{Text: "T[P]--;", Level: 2},
			{Text: "U();", Level: 2},
			{Text: "}", Level: 1},
		}},
		{"[[.]]", []csrc.Line{
			{Text: "U();", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 1},
			{Text: "while (T[P] != 0) {", Level: 2},
			{Text: "O();", Level: 3},
			{Text: "U();", Level: 3},
			{Text: "}", Level: 2},
			{Text: "}", Level: 1},
			{Text: "F();", Level: 1},
		}},
	}

	for i, tt := range tests {
		lines, _ := compile(t, tt.input)
		if len(lines) != len(tt.expected) {
			t.Fatalf("tests[%d] - line count wrong. expected=%d, got=%d\n%+v",
				i, len(tt.expected), len(lines), lines)
		}
		for j, line := range lines {
			if line != tt.expected[j] {
				t.Fatalf("tests[%d] - lines[%d] wrong. expected=%+v, got=%+v", i, j, tt.expected[j], line)
			}
		}
	}
}

func TestIOExpansion(t *testing.T) {
	tests := []struct {
		input string
		text  string
		n     int
	}{
		{".", "O();", 1},
		{"..........", "O();", 10},
		{",,,", "I();", 3},
		{".,.,", "O();", 2},
	}

	for i, tt := range tests {
		lines, st := compile(t, tt.input)
		if got := countText(lines, tt.text); got != tt.n {
			t.Fatalf("tests[%d] - %q count wrong. expected=%d, got=%d", i, tt.text, tt.n, got)
		}
		if !st.IOPending {
			t.Fatalf("tests[%d] - expected pending I/O", i)
		}
	}
}

func TestUnbalancedNesting(t *testing.T) {
	tests := []struct {
		input  string
		opens  int
		closes int
		level  int
		lowest int
	}{
		{"[[]", 2, 1, 2, 1},
		{"[]]", 1, 2, 0, 0},
		{"]]]", 0, 3, -2, -2},
		{"]][[", 2, 2, 1, -1},
		{"[[[]]]", 3, 3, 1, 1},
	}

	for i, tt := range tests {
		lines, st := compile(t, tt.input)
		if got := countText(lines, "while (T[P] != 0) {"); got != tt.opens {
			t.Fatalf("tests[%d] - open count wrong. expected=%d, got=%d", i, tt.opens, got)
		}
		if got := countText(lines, "}"); got != tt.closes {
			t.Fatalf("tests[%d] - close count wrong. expected=%d, got=%d", i, tt.closes, got)
		}
		if st.Level != tt.level {
			t.Fatalf("tests[%d] - level wrong. expected=%d, got=%d", i, tt.level, st.Level)
		}
		if st.Lowest != tt.lowest {
			t.Fatalf("tests[%d] - lowest wrong. expected=%d, got=%d", i, tt.lowest, st.Lowest)
		}
	}
}

func TestTokenIgnoresUnknownSymbols(t *testing.T) {
	cw := csrc.New()
	c := New(cw)

	st := State{Level: 3, IOPending: true}
	got, err := c.Token(st, tokenizer.Token{Symbol: tokenizer.Symbol('x'), Count: 1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if got != st {
		t.Fatalf("state changed. expected=%+v, got=%+v", st, got)
	}
	if len(cw.Lines()) != 0 {
		t.Fatalf("expected no lines, got %+v", cw.Lines())
	}

	got, err = c.Token(st, tokenizer.EmptyToken)
	if err == nil || got != st || len(cw.Lines()) != 0 {
		t.Fatalf("empty token was not dropped. state=%+v, err=%v", got, err)
	}
}

func TestArithmeticReportsWriterError(t *testing.T) {
	cw := csrc.New()
	c := New(cw)

	st := InitialState()
	got, err := c.Arithmetic(st, tokenizer.Token{Symbol: tokenizer.OUTPUT, Count: 1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if errors.Is(err, notInstruction) {
		t.Fatalf("expected the writer's error, got %v", err)
	}
	if got != st || len(cw.Lines()) != 0 {
		t.Fatalf("state or output changed. state=%+v, lines=%+v", got, cw.Lines())
	}
}

func TestLowestIsThreadedThroughState(t *testing.T) {
	cw := csrc.New()
	c := New(cw)

	st := c.LoopClose(InitialState(), 2)
	if st.Level != -1 || st.Lowest != -1 {
		t.Fatalf("state wrong after closes. got=%+v", st)
	}
	st = c.LoopOpen(st, 3)
	if st.Level != 2 || st.Lowest != -1 {
		t.Fatalf("state wrong after opens. got=%+v", st)
	}

	fresh := c.LoopClose(InitialState(), 1)
	if fresh.Lowest != 0 {
		t.Fatalf("lowest leaked between states. got=%+v", fresh)
	}
}
