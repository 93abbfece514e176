package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/hlmerscher/bf2c-go/logger"
)

const Fallback = "cc"

// Probe reports whether the named compiler can be run.
type Probe func(name string) bool

// ExecProbe runs "<name> --version" and accepts a zero exit status.
func ExecProbe(name string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := exec.CommandContext(ctx, name, "--version").Run()
	if err != nil {
		logger.Printf("compiler %s not available: %s\n", name, err)
		return false
	}
	return true
}

// Available returns the candidates that pass probe, sorted by name.
func Available(candidates []string, probe Probe) []string {
	found := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if slices.Contains(found, name) {
			continue
		}
		if probe(name) {
			found = append(found, name)
		}
	}
	slices.Sort(found)
	return found
}

func Pick(available []string) string {
	if len(available) == 0 {
		return Fallback
	}
	return available[0]
}

// Instructions returns the compile and run hints for a generated file.
func Instructions(compiler, srcPath, binDir, basename, goos string) []string {
	if goos == "windows" {
		binPath := filepath.ToSlash(filepath.Join(binDir, basename+".exe"))
		return []string{
			fmt.Sprintf("to compile: %s %s -o %s", compiler, filepath.ToSlash(srcPath), binPath),
			fmt.Sprintf("to run: %s", windowsPath(binPath)),
		}
	}

	binPath := filepath.ToSlash(filepath.Join(binDir, basename))
	return []string{
		fmt.Sprintf("to compile: %s %s -o %s", compiler, filepath.ToSlash(srcPath), binPath),
		fmt.Sprintf("to run: ./%s", binPath),
	}
}

func windowsPath(path string) string {
	return strings.ReplaceAll(path, "/", "\\")
}
