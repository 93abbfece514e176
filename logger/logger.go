package logger

import (
	"fmt"
	"io"
	"os"
)

var (
	verbose           = false
	out     io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
)

func Toggle(flag bool) {
	verbose = flag
}

func Verbose() bool {
	return verbose
}

// SetOutput redirects both verbose and warning output.
func SetOutput(w io.Writer) {
	out, errOut = w, w
}

func Print(values ...any) {
	if !verbose {
		return
	}

	fmt.Fprint(out, values...)
}

func Printf(format string, values ...any) {
	if !verbose {
		return
	}

	fmt.Fprintf(out, format, values...)
}

func Println(values ...any) {
	if !verbose {
		return
	}

	fmt.Fprintln(out, values...)
}

// Warnf writes regardless of the verbose flag.
func Warnf(format string, values ...any) {
	fmt.Fprintf(errOut, "WARNING: "+format, values...)
}
