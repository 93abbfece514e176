package writer

import (
	"strings"

	"github.com/hlmerscher/bf2c-go/csrc"
)

const placeholder = "C_CODE_HERE"

const template = `
#include "` + csrc.RuntimeFilename + `"

int main()
{
` + placeholder + `
}
`

// Indent prefixes a line with one tab per level. Negative levels get none.
func Indent(line csrc.Line) string {
	if line.Level <= 0 {
		return line.Text
	}
	return strings.Repeat("\t", line.Level) + line.Text
}

func Output(out *strings.Builder, lines []csrc.Line) error {
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		body = append(body, Indent(line))
	}

	result := strings.Replace(template, placeholder, strings.Join(body, "\n"), 1)
	_, err := out.WriteString(result)
	return err
}
