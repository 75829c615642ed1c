package opts

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer

	Debug   bool
	DryRun  bool
	Verbose bool
}

// Default returns options bound to the real filesystem and process streams
func Default() *RootOpts {
	return &RootOpts{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
