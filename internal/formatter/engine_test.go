package formatter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// upperRule upper-cases every line.
type upperRule struct{}

func (upperRule) Name() string { return "upper" }

func (upperRule) Format(doc source.Document, _ *config.FormatterConfig) source.Document {
	return doc.Map(strings.ToUpper)
}

// suffixRule appends a marker so rule order is visible in the output.
type suffixRule string

func (r suffixRule) Name() string { return string(r) }

func (r suffixRule) Format(doc source.Document, _ *config.FormatterConfig) source.Document {
	return doc.Map(func(s string) string { return s + string(r) })
}

func TestRunAppliesRulesInOrder(t *testing.T) {
	cfg := &config.DefaultConfig().Formatter
	rules := []FormatRule{suffixRule("a"), upperRule{}, suffixRule("b")}

	got := Run(source.Document{"x"}, cfg, rules)
	if got[0] != "XAb" {
		t.Errorf("want %q, got %q", "XAb", got[0])
	}
}

func TestFormatNoRules(t *testing.T) {
	cfg := &config.DefaultConfig().Formatter

	for _, in := range []string{"", "a", "a\nb\n"} {
		if got := Format(in, cfg, nil); got != in {
			t.Errorf("Format(%q) with no rules = %q", in, got)
		}
	}
}

func TestFormatRange(t *testing.T) {
	cfg := &config.DefaultConfig().Formatter
	rules := []FormatRule{upperRule{}}

	tests := []struct {
		name       string
		src        string
		start, end int
		want       string
	}{
		{"middle", "abc\ndef\nghi", 4, 7, "abc\nDEF\nghi"},
		{"whole", "abc", 0, 3, "ABC"},
		{"empty range", "abc", 1, 1, "abc"},
		{"negative start clamped", "abc", -5, 1, "Abc"},
		{"end past length clamped", "abc", 2, 99, "abC"},
		{"end before start", "abc", 2, 1, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.src, tt.start, tt.end, cfg, rules); got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatContext(t *testing.T) {
	cfg := &config.DefaultConfig().Formatter

	got, err := FormatContext(context.Background(), "abc", cfg, []FormatRule{upperRule{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC" {
		t.Errorf("want %q, got %q", "ABC", got)
	}
}

func TestFormatContextCanceled(t *testing.T) {
	cfg := &config.DefaultConfig().Formatter
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := FormatContext(ctx, "abc", cfg, []FormatRule{upperRule{}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
	if got != "" {
		t.Errorf("canceled call returned output %q", got)
	}
}
