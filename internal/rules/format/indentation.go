package format

import (
	"strings"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// indentUnit is one level of indentation.
const indentUnit = "  "

// Indentation recomputes each line's leading whitespace from the brace
// depth accumulated over the lines before it.
type Indentation struct{}

// Name returns the config key for this rule.
func (*Indentation) Name() string {
	return "fix_indentation"
}

// Format re-indents every line in a single forward pass. The running depth
// may go negative on unbalanced input; the level applied to a line is
// clamped at zero.
func (*Indentation) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.FixIndentation {
		return doc
	}

	result := make(source.Document, len(doc))
	depth := 0

	for i, text := range doc {
		line := source.Parse(text)
		result[i] = indentLine(line.Trimmed(), depth)
		depth += line.BraceDelta()
	}

	return result
}

func indentLine(trimmed string, depth int) string {
	if trimmed == "" {
		return ""
	}

	level := max(depth, 0)
	if startsWithCloser(trimmed) {
		level = max(level-1, 0)
	}

	return strings.Repeat(indentUnit, level) + trimmed
}

// startsWithCloser reports whether s begins with any closing bracket. All
// three bracket kinds dedent against the single brace counter.
func startsWithCloser(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '}', ']', ')':
		return true
	}
	return false
}
