package missing

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Report writes the missing functions under dir to w, one per line.
func (m *realMissing) Report(ctx context.Context, dir string, w io.Writer) error {
	missing, err := m.FindMissing(ctx, dir)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, name := range missing {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteReport, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}
