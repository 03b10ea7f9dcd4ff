package fs

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineSize bounds a single header line. Generated API headers carry long
// prototypes, so the bufio default of 64KiB is raised.
const maxLineSize = 1024 * 1024

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadLines reads a text file and returns its lines without line terminators.
func (f *realFS) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadLines, path, err)
	}

	return lines, nil
}
