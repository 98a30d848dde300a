package format

import (
	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// FinalNewline ensures the text ends with exactly one newline. The document
// is split on '\n', so a trailing newline is a single empty last line.
type FinalNewline struct{}

// Name returns the config key for this rule.
func (r *FinalNewline) Name() string {
	return "insert_final_newline"
}

// Format removes trailing blank lines and appends one empty line. An empty
// document is left alone.
func (r *FinalNewline) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.InsertFinalNewline {
		return doc
	}

	result := doc.Clone()
	for len(result) > 0 && source.Parse(result[len(result)-1]).IsBlank() {
		result = result[:len(result)-1]
	}

	if len(result) == 0 {
		return source.Document{""}
	}

	return append(result, "")
}
