package fs

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// readChunkSize is the size of the window FileContains reads at a time.
const readChunkSize = 64 * 1024

// FileContains reports whether the file at path contains term.
//
// The file is streamed in chunks, keeping len(term)-1 bytes of overlap so a
// match straddling two reads is still found. An empty term matches any
// non-empty file, mirroring grep.
func (f *realFS) FileContains(path string, term []byte) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = file.Close()
	}()

	reader := bufio.NewReaderSize(file, readChunkSize)
	overlap := len(term) - 1
	if overlap < 0 {
		overlap = 0
	}

	window := make([]byte, 0, readChunkSize+overlap)
	chunk := make([]byte, readChunkSize)
	for {
		n, readErr := reader.Read(chunk)
		if n > 0 {
			if len(term) == 0 {
				return true, nil
			}
			window = append(window, chunk[:n]...)
			if bytes.Contains(window, term) {
				return true, nil
			}
			if len(window) > overlap {
				window = append(window[:0], window[len(window)-overlap:]...)
			}
		}
		if errors.Is(readErr, io.EOF) {
			return false, nil
		}
		if readErr != nil {
			return false, readErr
		}
	}
}
