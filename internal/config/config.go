// Package config holds the invocation options for filenames-list. Nothing is
// read from the environment or from configuration files; the two paths come
// from positional arguments with fixed defaults.
package config

const (
	// DefaultSourceDir is the directory listed when no argument is given
	DefaultSourceDir = "wikidump/"

	// DefaultOutputPath is the file written when no second argument is given
	DefaultOutputPath = "filenames.txt"
)

// Options configures a single listing run
type Options struct {
	SourceDir  string
	OutputPath string

	// Confirm asks before overwriting an existing output file
	Confirm bool
	// Verify re-reads the written file and checks its count
	Verify bool
	// NoColor disables colored output
	NoColor bool
}

// Default returns options with both paths set to their defaults
func Default() Options {
	return Options{
		SourceDir:  DefaultSourceDir,
		OutputPath: DefaultOutputPath,
	}
}

// FromArgs builds options from positional arguments.
// The first argument overrides the source directory, the second the output
// path. Anything past the second is ignored.
func FromArgs(args []string) Options {
	opts := Default()

	if len(args) > 0 {
		opts.SourceDir = args[0]
	}

	if len(args) > 1 {
		opts.OutputPath = args[1]
	}

	return opts
}
