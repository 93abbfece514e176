package onerror

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const usageStatus = 2

// Exit is swapped out in tests.
var Exit = os.Exit

func Log(err error) {
	Logf("", err)
}

func Logf(msg string, err error) {
	if err != nil {
		log.Fatalf("\n%s%s", msg, err)
	}
}

// Usagef prints the usage, then the mistake, and exits with status 2.
func Usagef(format string, values ...any) {
	flag.Usage()
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], fmt.Sprintf(format, values...))
	Exit(usageStatus)
}
