package engine

import "errors"

var (
	notInstruction = errors.New("not an instruction")
)
