package formatter

import (
	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// FormatRule transforms a document. Rules are applied in registered order.
type FormatRule interface {
	// Name returns the config key for this rule (e.g., "operator_spacing").
	Name() string

	// Format receives the full document and config, returns the rewritten
	// document. Rules must not mutate the input slice; they return a new
	// one when anything changes.
	Format(doc source.Document, cfg *config.FormatterConfig) source.Document
}
