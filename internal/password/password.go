package password

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/hashforge/hashforge/internal/worker"
)

// Printable ASCII range used for generated passwords.
const (
	minPrintable = 32  // space
	maxPrintable = 126 // tilde
)

// Password input errors.
var (
	// ErrEmptyInput is returned when a password sample contains no passwords.
	ErrEmptyInput = errors.New("empty password input")

	// ErrVaryingLengths is returned when passwords in a sample do not all
	// share the same length.
	ErrVaryingLengths = errors.New("passwords have varying lengths")

	// ErrInvalidCount is returned when a generation request asks for zero
	// passwords.
	ErrInvalidCount = errors.New("password count must be positive")

	// ErrInvalidLength is returned when a generation request asks for
	// zero-length passwords.
	ErrInvalidLength = errors.New("password length must be positive")
)

// Generate produces count random passwords of the given length using at
// most threads concurrent workers. Each password is an independent uniform
// sample of printable ASCII characters.
func Generate(ctx context.Context, count, length, threads int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	return worker.Map(ctx, count, threads, func(_ context.Context, _ int) (string, error) {
		return generateOne(length), nil
	})
}

// generateOne returns one random printable-ASCII password.
//
// math/rand/v2 is sufficient here: these passwords seed throwaway cracking
// tables, they are not credentials.
func generateOne(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = byte(minPrintable + rand.IntN(maxPrintable-minPrintable+1))
	}
	return string(buf)
}

// Write writes one password per line to w.
func Write(w io.Writer, passwords []string) error {
	bw := bufio.NewWriter(w)
	for _, p := range passwords {
		if _, err := fmt.Fprintln(bw, p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a password sample from r, one password per line.
//
// The first line fixes the expected length; any later line with a
// different length fails the whole read with ErrVaryingLengths wrapped
// with the offending line number. An input with no lines at all fails
// with ErrEmptyInput, so downstream stages never see an empty sample.
func Read(r io.Reader) ([]string, error) {
	var passwords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(passwords) > 0 && len(line) != len(passwords[0]) {
			return nil, fmt.Errorf("%w: line %d has %d characters, expected %d",
				ErrVaryingLengths, len(passwords)+1, len(line), len(passwords[0]))
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(passwords) == 0 {
		return nil, ErrEmptyInput
	}
	return passwords, nil
}

// ReadFile reads a password sample from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-chosen input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	passwords, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return passwords, nil
}
