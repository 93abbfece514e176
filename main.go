package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hlmerscher/bf2c-go/analyzer"
	"github.com/hlmerscher/bf2c-go/config"
	"github.com/hlmerscher/bf2c-go/csrc"
	"github.com/hlmerscher/bf2c-go/logger"
	"github.com/hlmerscher/bf2c-go/onerror"
	"github.com/hlmerscher/bf2c-go/toolchain"
)

func main() {
	var envFile, srcDir string
	var verbose bool
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, "the env file with BF2C_* settings")
	flag.StringVar(&srcDir, "o", "", "the directory the generated C files are written to")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE...\n\nA simple BF to C transpiler\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(envFile)
	onerror.Logf("error loading configuration\n", err)
	if srcDir != "" {
		cfg.SourceDir = srcDir
	}
	logger.Toggle(cfg.Verbose || verbose)

	filenames := flag.Args()
	if len(filenames) == 0 {
		onerror.Usagef("you must provide a file!")
		return
	}

	available := toolchain.Available(cfg.Compilers, toolchain.ExecProbe)
	if len(available) > 0 {
		fmt.Println("Your available C compilers:", strings.Join(available, " "))
	} else {
		fmt.Println("You don't have any supported C compiler installed, please install clang or gcc")
	}
	compiler := toolchain.Pick(available)

	for _, filename := range filenames {
		if !isFile(filename) {
			onerror.Usagef("file %q is not a file", filename)
			return
		}
		err := transpileFile(filename, compiler, cfg, os.Stdout)
		onerror.Logf(fmt.Sprintf("error transpiling %s\n", filename), err)
	}
}

func isFile(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.Mode().IsRegular()
}

func transpileFile(filename, compiler string, cfg config.Config, stdout io.Writer) error {
	sourceFile, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	out := new(strings.Builder)
	result, err := analyzer.Compile(sourceFile, out)
	if err != nil {
		return err
	}
	logger.Printf("%s: %d tokens, %d lines\n", filename, result.Tokens, result.Lines)
	if !result.Balanced() {
		logger.Warnf("%s: unbalanced brackets, the generated C will not compile\n", filename)
	}

	basename := filepath.Base(filename)
	outputFilename := filepath.Join(cfg.SourceDir, basename+".c")
	err = writeToFile(outputFilename, out.String())
	if err != nil {
		return err
	}
	if cfg.WriteRuntime {
		err = writeRuntime(cfg)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, basename, "transpiled!")
	fmt.Fprintln(stdout, "now you must compile it and run!")
	for _, line := range toolchain.Instructions(compiler, outputFilename, cfg.BinDir, basename, runtime.GOOS) {
		fmt.Fprintln(stdout, line)
	}
	fmt.Fprintln(stdout)

	return nil
}

func writeToFile(filename string, content string) error {
	logger.Printf("output:\t%s\n", filename)

	err := os.MkdirAll(filepath.Dir(filename), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(content), 0666)
}

// writeRuntime keeps an existing base.c so local edits survive.
func writeRuntime(cfg config.Config) error {
	filename := filepath.Join(cfg.SourceDir, csrc.RuntimeFilename)
	_, err := os.Stat(filename)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return writeToFile(filename, csrc.Runtime(cfg.TapeSize))
}
