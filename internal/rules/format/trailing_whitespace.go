// Package format contains individual formatting rule implementations.
package format

import (
	"strings"
	"unicode"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// tabReplacement is what every tab expands to, regardless of column.
const tabReplacement = "  "

// TrailingWhitespace strips trailing whitespace and expands tabs.
type TrailingWhitespace struct{}

// Name returns the config key for this rule.
func (r *TrailingWhitespace) Name() string {
	return "trim_trailing_whitespace"
}

// Format normalizes whitespace on every line.
func (r *TrailingWhitespace) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.TrimTrailingWhitespace && !cfg.ExpandTabs {
		return doc
	}

	return doc.Map(func(line string) string {
		if cfg.TrimTrailingWhitespace {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		if cfg.ExpandTabs {
			line = strings.ReplaceAll(line, "\t", tabReplacement)
		}
		return line
	})
}
