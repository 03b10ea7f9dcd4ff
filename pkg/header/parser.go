package header

import (
	"fmt"
	"sort"

	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/lerenn/vkmissing/pkg/logger"
)

//go:generate go tool mockgen -source=parser.go -destination=mocks/parser.gen.go -package=mocks

// Parser turns header content into the sorted list of declared function names.
type Parser interface {
	// ParseFile reads the header at path and parses its lines.
	ParseFile(path string) ([]string, error)
	// ParseLines extracts every declared name, drops non-declaration lines and
	// sorts the result. Duplicates are kept.
	ParseLines(lines []string) ([]string, error)
}

// NewParserParams contains parameters for creating a new Parser instance.
type NewParserParams struct {
	FS     fs.FS
	Logger logger.Logger
	Marker string
}

type realParser struct {
	fs     fs.FS
	logger logger.Logger
	marker string
}

// NewParser creates a new Parser instance.
func NewParser(params NewParserParams) Parser {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realParser{
		fs:     params.FS,
		logger: l,
		marker: params.Marker,
	}
}

// ParseFile reads the header at path and parses its lines.
func (p *realParser) ParseFile(path string) ([]string, error) {
	p.logger.Debugf("Reading header %s", path)

	lines, err := p.fs.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHeaderRead, path, err)
	}

	names, err := p.ParseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(names) == 0 {
		p.logger.Warnf("No %q declarations found in %s", p.marker, path)
		return names, nil
	}

	p.logger.Debugf("Found %d declarations in %s", len(names), path)
	return names, nil
}

// ParseLines extracts every declared name from lines, in sorted order.
func (p *realParser) ParseLines(lines []string) ([]string, error) {
	names := make([]string, 0)
	for i, line := range lines {
		name, ok, err := ExtractFunctionName(line, p.marker)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !ok {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
