package missing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FindMissing returns the declared functions with no occurrence under dir.
func (m *realMissing) FindMissing(ctx context.Context, dir string) ([]string, error) {
	names, err := m.deps.Parser.ParseFile(m.config.HeaderPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseHeader, err)
	}
	m.VerbosePrint("Checking %d functions from %s against %s", len(names), m.config.HeaderPath, dir)

	found, err := m.scanAll(ctx, dir, names)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for i, name := range names {
		if !found[i] {
			missing = append(missing, name)
		}
	}

	m.VerbosePrint("%d of %d functions are missing", len(missing), len(names))
	return missing, nil
}

// scanAll checks every name with at most config.Workers searches in flight.
// found[i] holds the result for names[i]; the first failure cancels the rest.
func (m *realMissing) scanAll(ctx context.Context, dir string, names []string) ([]bool, error) {
	found := make([]bool, len(names))

	workers := m.config.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := m.deps.Scanner.Contains(gctx, dir, name)
			if err != nil {
				return fmt.Errorf("%w %q: %w", ErrScanFunction, name, err)
			}
			if !ok {
				m.VerbosePrint("No reference to %s", name)
			}
			found[i] = ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return found, nil
}
