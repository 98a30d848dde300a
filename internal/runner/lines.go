package runner

import (
	"fmt"
	"strconv"
	"strings"
)

// lineRange selects lines first..last, 1-based and inclusive. A zero
// first means the whole document; a zero last means through the end.
type lineRange struct {
	first int
	last  int
}

// parseLineRange parses "first:last". Either side may be omitted.
func parseLineRange(s string) (lineRange, error) {
	if s == "" {
		return lineRange{}, nil
	}

	firstText, lastText, ok := strings.Cut(s, ":")
	if !ok {
		return lineRange{}, fmt.Errorf("invalid line range %q: want first:last", s)
	}

	lr := lineRange{first: 1}
	if firstText != "" {
		n, err := strconv.Atoi(firstText)
		if err != nil || n < 1 {
			return lineRange{}, fmt.Errorf("invalid line range %q: bad first line %q", s, firstText)
		}
		lr.first = n
	}
	if lastText != "" {
		n, err := strconv.Atoi(lastText)
		if err != nil || n < lr.first {
			return lineRange{}, fmt.Errorf("invalid line range %q: bad last line %q", s, lastText)
		}
		lr.last = n
	}
	return lr, nil
}

func (lr lineRange) set() bool {
	return lr.first > 0
}

// offsets returns the byte range of the selected lines in src. The range
// includes the newline ending the last selected line. Lines past the end
// of src select an empty range at len(src).
func (lr lineRange) offsets(src string) (start, end int) {
	start, end = len(src), len(src)

	line, pos := 1, 0
	for {
		if line == lr.first {
			start = pos
		}
		nl := strings.IndexByte(src[pos:], '\n')
		if nl < 0 {
			break
		}
		next := pos + nl + 1
		if line == lr.last {
			end = next
			break
		}
		line++
		pos = next
	}

	return start, end
}
