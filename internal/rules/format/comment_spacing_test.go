package format

import (
	"testing"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

func TestCommentSpacing(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"adds space", "//comment", "// comment"},
		{"already spaced", "// comment", "// comment"},
		{"collapses spaces", "//    comment", "// comment"},
		{"trailing comment", "x := 1 //set x", "x := 1 // set x"},
		{"indented", "  //note", "  // note"},
		{"empty comment", "//", "//"},
		{"marker and spaces only", "//   ", "//   "},
		{"triple slash", "///doc", "// /doc"},
		{"marker inside string", `url := "http://example.com"`, `url := "http://example.com"`},
		{"marker inside string with comment", `url := "http://x" //see`, `url := "http://x" // see`},
		{"second marker in comment", "//a //b", "// a //b"},
		{"no comment", "x := 1", "x := 1"},
	}

	rule := &CommentSpacing{}
	cfg := &config.DefaultConfig().Formatter

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rule.Format(source.Document{tt.line}, cfg)
			if result[0] != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, result[0])
			}
		})
	}
}

func TestCommentSpacingDisabled(t *testing.T) {
	rule := &CommentSpacing{}
	cfg := &config.DefaultConfig().Formatter
	cfg.SpaceAfterComment = false

	result := rule.Format(source.Document{"//comment"}, cfg)
	if result[0] != "//comment" {
		t.Error("disabled rule should not modify lines")
	}
}
