package format

import (
	"slices"
	"testing"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

func TestFinalNewline(t *testing.T) {
	rule := &FinalNewline{}
	cfg := &config.DefaultConfig().Formatter
	cfg.InsertFinalNewline = true

	tests := []struct {
		name     string
		doc      source.Document
		expected source.Document
	}{
		{
			name:     "missing newline",
			doc:      source.Document{"x := 1"},
			expected: source.Document{"x := 1", ""},
		},
		{
			name:     "one trailing newline",
			doc:      source.Document{"x := 1", ""},
			expected: source.Document{"x := 1", ""},
		},
		{
			name:     "multiple trailing blanks",
			doc:      source.Document{"x := 1", "", "  ", ""},
			expected: source.Document{"x := 1", ""},
		},
		{
			name:     "empty input",
			doc:      source.Document{""},
			expected: source.Document{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rule.Format(tt.doc, cfg)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("want %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestFinalNewlineDisabledByDefault(t *testing.T) {
	rule := &FinalNewline{}
	cfg := &config.DefaultConfig().Formatter

	doc := source.Document{"x := 1", "", ""}
	result := rule.Format(doc, cfg)
	if len(result) != 3 {
		t.Errorf("disabled rule should not modify: got %d lines", len(result))
	}
}

func TestFinalNewlineDoesNotMutateInput(t *testing.T) {
	rule := &FinalNewline{}
	cfg := &config.DefaultConfig().Formatter
	cfg.InsertFinalNewline = true

	doc := source.Document{"x := 1", "", ""}
	rule.Format(doc, cfg)

	if !slices.Equal(doc, source.Document{"x := 1", "", ""}) {
		t.Errorf("rule mutated input document: %q", doc)
	}
}
