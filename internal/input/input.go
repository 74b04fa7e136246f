// Package input reads hex packet strings for the driver.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Line is one non-empty input line with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// Lines returns the trimmed non-empty lines of r.
func Lines(r io.Reader) ([]Line, error) {
	var out []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		out = append(out, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: scan line %d: %w", n+1, err)
	}
	return out, nil
}

// String returns all of r with surrounding whitespace trimmed.
func String(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("input: read: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// ReadLines is Lines over the file at path.
func ReadLines(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return Lines(f)
}

// ReadString is String over the file at path.
func ReadString(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return String(f)
}
