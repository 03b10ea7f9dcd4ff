package header

import (
	"fmt"
	"strings"
)

// ExtractFunctionName returns the text between the first occurrence of marker
// in line and the next '('.
//
// ok is false when the line does not contain the marker. The name is returned
// verbatim, surrounding whitespace included. A line holding the marker but no
// '(' after it yields ErrMalformedDeclaration.
func ExtractFunctionName(line, marker string) (name string, ok bool, err error) {
	start := strings.Index(line, marker)
	if start == -1 {
		return "", false, nil
	}

	nameStart := start + len(marker)
	end := strings.IndexByte(line[nameStart:], '(')
	if end == -1 {
		return "", false, fmt.Errorf("%w: %q", ErrMalformedDeclaration, line)
	}

	return line[nameStart : nameStart+end], true, nil
}
