package common

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateEntryName checks that a directory entry name survives a round trip
// through the space-separated listing format. Names containing whitespace are
// split into several tokens by readers.
func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("entry name contains whitespace: %q", name)
	}

	return nil
}
