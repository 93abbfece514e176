package csrc

import (
	_ "embed"
	"strconv"
	"strings"
)

const DefaultTapeSize = 1024

//go:embed base.c.tmpl
var baseTemplate string

// RuntimeFilename is the file the generated programs include.
const RuntimeFilename = "base.c"

// Runtime renders the C runtime providing T, P, O, I, F and U.
func Runtime(tapeSize int) string {
	if tapeSize <= 0 {
		tapeSize = DefaultTapeSize
	}
	return strings.Replace(baseTemplate, "{{TAPE_SIZE}}", strconv.Itoa(tapeSize), 1)
}
