package format

import (
	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// BlankLines collapses every run of blank lines to a single blank line.
type BlankLines struct{}

// Name returns the config key for this rule.
func (*BlankLines) Name() string {
	return "collapse_blank_lines"
}

// Format drops a blank line when the previously emitted line was blank too.
// A blank first line is kept.
func (*BlankLines) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.CollapseBlankLines {
		return doc
	}

	result := make(source.Document, 0, len(doc))
	lastWasBlank := false

	for _, line := range doc {
		blank := source.Parse(line).IsBlank()
		if blank && lastWasBlank {
			continue
		}
		result = append(result, line)
		lastWasBlank = blank
	}

	return result
}
