// Package source reads trip logs into memory as ordered lines.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	// ErrFileNotFound is returned when the input path does not name a regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyFile is returned when the input file has zero length.
	ErrEmptyFile = errors.New("file is empty")
)

// ReadFile returns the lines of the file at path. A missing or empty file is
// reported before any line is read.
func ReadFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.Size() == 0 {
		return nil, ErrEmptyFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}

// ReadLines reads r to EOF and returns its lines without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
