// Package listing writes and reads the filenames listing: a single line of
// space-separated tokens where the first token is the entry count and every
// token after it is one entry name.
//
//	<count> <name_1> <name_2> ... <name_count> 
//
// Every token, including the last, is followed by one space and no newline is
// written. The tf-idf loader splits on whitespace and depends on this shape.
package listing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/zoro11031/filenames-list/internal/system"
)

// ErrMalformedListing is returned by Decode for input that is not a valid listing
var ErrMalformedListing = errors.New("malformed listing")

// Encode writes the count followed by each name, each token followed by a space
func Encode(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strconv.Itoa(len(names)))
	bw.WriteByte(' ')
	for _, name := range names {
		bw.WriteString(name)
		bw.WriteByte(' ')
	}

	// bufio.Writer keeps the first error, so checking Flush covers every write
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", system.ErrFileWrite, err)
	}
	return nil
}

// Decode reads a listing and returns the entry names in file order
func Decode(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read listing: %w", err)
		}
		return nil, fmt.Errorf("%w: missing count", ErrMalformedListing)
	}

	count, err := strconv.Atoi(scanner.Text())
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid count %q", ErrMalformedListing, scanner.Text())
	}

	names := []string{}
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	if len(names) != count {
		return nil, fmt.Errorf("%w: count is %d but %d names follow", ErrMalformedListing, count, len(names))
	}

	return names, nil
}
