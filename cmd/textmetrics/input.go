package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// maxInputSize bounds how much text is read from a file or stdin.
const maxInputSize = 64 * 1024 * 1024

// readInput returns inline text when set, otherwise the contents of path,
// where "" or "-" means stdin.
func readInput(inline *string, path string, stdin io.Reader) (string, error) {
	if inline != nil {
		return *inline, nil
	}
	if path == "" || path == "-" {
		if stdin == nil {
			return "", errors.New("no input provided")
		}
		return readLimited(stdin, "stdin")
	}
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return readLimited(file, path)
}

func readLimited(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > maxInputSize {
		return "", fmt.Errorf("%s exceeds %d bytes", name, maxInputSize)
	}
	return string(data), nil
}
