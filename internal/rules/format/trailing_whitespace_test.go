package format

import (
	"testing"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

func TestTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"trailing spaces", "x := 1   ", "x := 1"},
		{"trailing tab", "x := 1\t", "x := 1"},
		{"carriage return", "x := 1\r", "x := 1"},
		{"leading tab", "\tx := 1", "  x := 1"},
		{"two leading tabs", "\t\tx := 1", "    x := 1"},
		{"inner tab", "x\t:= 1", "x  := 1"},
		{"no trailing", "x := 1", "x := 1"},
		{"whitespace only", " \t ", ""},
		{"empty", "", ""},
	}

	rule := &TrailingWhitespace{}
	cfg := &config.DefaultConfig().Formatter

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rule.Format(source.Document{tt.line}, cfg)
			if len(result) != 1 {
				t.Fatalf("expected 1 line, got %d", len(result))
			}
			if result[0] != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, result[0])
			}
		})
	}
}

func TestTrailingWhitespaceTabsOnly(t *testing.T) {
	rule := &TrailingWhitespace{}
	cfg := &config.DefaultConfig().Formatter
	cfg.TrimTrailingWhitespace = false

	result := rule.Format(source.Document{"\tx := 1  "}, cfg)
	if result[0] != "  x := 1  " {
		t.Errorf("got %q, want tabs expanded and trailing spaces kept", result[0])
	}
}

func TestTrailingWhitespaceDisabled(t *testing.T) {
	rule := &TrailingWhitespace{}
	cfg := &config.DefaultConfig().Formatter
	cfg.TrimTrailingWhitespace = false
	cfg.ExpandTabs = false

	result := rule.Format(source.Document{"\t// comment   "}, cfg)
	if result[0] != "\t// comment   " {
		t.Errorf("disabled rule should not modify: got %q", result[0])
	}
}

func TestTrailingWhitespaceDoesNotMutateInput(t *testing.T) {
	rule := &TrailingWhitespace{}
	cfg := &config.DefaultConfig().Formatter

	original := source.Document{"// comment   "}
	rule.Format(original, cfg)

	if original[0] != "// comment   " {
		t.Error("rule mutated input document")
	}
}
