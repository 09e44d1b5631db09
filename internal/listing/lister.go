package listing

import (
	"errors"
	"fmt"

	"github.com/zoro11031/filenames-list/internal/common"
	"github.com/zoro11031/filenames-list/internal/config"
	"github.com/zoro11031/filenames-list/internal/system"
)

// ErrAborted is returned when the user declines to overwrite the output file
var ErrAborted = errors.New("aborted by user")

// Reporter receives progress messages
type Reporter interface {
	Infof(format string, args ...interface{})
	Successf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// Result describes a completed run
type Result struct {
	SourceDir  string
	OutputPath string
	Count      int
}

// Lister writes the entries of a directory to a listing file
type Lister struct {
	fs       system.FileSystemManager
	reporter Reporter
	prompter Prompter
}

// Prompter asks for confirmation before an existing output is overwritten
type Prompter interface {
	PromptYesNo(prompt string, defaultYes bool) (bool, error)
}

// NewLister creates a Lister. prompter may be nil when Options.Confirm is never set.
func NewLister(fs system.FileSystemManager, reporter Reporter, prompter Prompter) *Lister {
	return &Lister{
		fs:       fs,
		reporter: reporter,
		prompter: prompter,
	}
}

// Run lists opts.SourceDir and writes the listing to opts.OutputPath.
// The output file is not opened until the listing has succeeded.
func (l *Lister) Run(opts config.Options) (*Result, error) {
	l.reporter.Infof("Processing %s ...", opts.SourceDir)

	names, err := l.fs.ListDirectory(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if err := common.ValidateEntryName(name); err != nil {
			l.reporter.Warningf("%v; readers will split it into several names", err)
		}
	}

	if err := common.ValidateNotEmpty(opts.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: output path: %w", system.ErrFileWrite, err)
	}

	if opts.Confirm {
		if err := l.confirmOverwrite(opts.OutputPath); err != nil {
			return nil, err
		}
	}

	if err := l.write(opts.OutputPath, names); err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := l.verify(opts.OutputPath, len(names)); err != nil {
			return nil, err
		}
	}

	l.reporter.Successf("Finished processing %d files, created: %s", len(names), opts.OutputPath)

	return &Result{
		SourceDir:  opts.SourceDir,
		OutputPath: opts.OutputPath,
		Count:      len(names),
	}, nil
}

// write creates or truncates path and encodes names into it.
// The file is closed on every path; a close error only surfaces if nothing failed before it.
func (l *Lister) write(path string, names []string) (err error) {
	w, err := l.fs.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", system.ErrFileWrite, path, closeErr)
		}
	}()

	if err := Encode(w, names); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (l *Lister) confirmOverwrite(path string) error {
	exists, err := l.fs.FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if l.prompter == nil {
		return fmt.Errorf("cannot confirm overwrite of %s: no prompter configured", path)
	}

	ok, err := l.prompter.PromptYesNo(fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s left unchanged", ErrAborted, path)
	}
	return nil
}

// verify re-reads path and checks that it decodes to want names
func (l *Lister) verify(path string, want int) error {
	r, err := l.fs.OpenFile(path)
	if err != nil {
		return err
	}
	defer r.Close()

	names, err := Decode(r)
	if err != nil {
		return fmt.Errorf("verification of %s failed: %w", path, err)
	}
	if len(names) != want {
		return fmt.Errorf("verification of %s failed: %w: read %d names, wrote %d",
			path, ErrMalformedListing, len(names), want)
	}

	l.reporter.Infof("Verified %s: %d names", path, len(names))
	return nil
}
