package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/filenames-list/internal/system"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandIgnoresExtraArgs(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "a.txt"), nil, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.txt")

	stdout, err := execute(t, "--no-color", src, out, "ignored", "also-ignored")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "1 a.txt " {
		t.Errorf("output = %q, want %q", content, "1 a.txt ")
	}

	if !strings.Contains(stdout, "Finished processing 1 files, created: "+out) {
		t.Errorf("stdout = %q, missing completion message", stdout)
	}
}

func TestRootCommandMissingDirectory(t *testing.T) {
	workDir := t.TempDir()
	out := filepath.Join(workDir, "filenames.txt")

	_, err := execute(t, "--no-color", filepath.Join(workDir, "wikidump"), out)
	if !errors.Is(err, system.ErrDirectoryNotFound) {
		t.Errorf("Execute() error = %v, want ErrDirectoryNotFound", err)
	}

	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file should not be created, stat error = %v", statErr)
	}
}
