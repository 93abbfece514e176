package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xyproto/env/v2"

	"github.com/hlmerscher/bf2c-go/csrc"
)

const DefaultEnvFile = ".env"

var DefaultCompilers = []string{"gcc", "clang", "tcc", "cc"}

type Config struct {
	SourceDir    string
	BinDir       string
	Compilers    []string
	TapeSize     int
	Verbose      bool
	WriteRuntime bool
}

// Load reads envFile, if present, into the environment and builds the
// configuration from BF2C_* variables.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	env.Load()

	compilers := strings.Fields(env.Str("BF2C_COMPILERS"))
	if len(compilers) == 0 {
		compilers = DefaultCompilers
	}

	return Config{
		SourceDir:    env.Str("BF2C_SRC_DIR", "src"),
		BinDir:       env.Str("BF2C_BIN_DIR", "bin"),
		Compilers:    compilers,
		TapeSize:     env.Int("BF2C_TAPE_SIZE", csrc.DefaultTapeSize),
		Verbose:      env.Bool("BF2C_VERBOSE"),
		WriteRuntime: !env.Bool("BF2C_NO_RUNTIME"),
	}, nil
}
