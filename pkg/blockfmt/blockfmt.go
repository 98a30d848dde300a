// Package blockfmt formats BlockScript source with the default rule set.
//
// It is the entry point for editors and other tools embedding the
// formatter: Format for whole documents, FormatRange for a selection and
// Edits for a minimal set of replacements.
package blockfmt

import (
	"context"
	"slices"
	"strings"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/formatter"
	"github.com/donaldgifford/blockfmt/internal/rules"
	"github.com/donaldgifford/blockfmt/internal/rules/format"
	"github.com/donaldgifford/blockfmt/pkg/diff"
)

// Edit replaces lines [Start, End) of the original text with NewText.
// Lines are 0-based and keep their trailing newline; Start == End inserts
// before line Start.
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Format formats a whole document.
func Format(src string) string {
	return formatter.Format(src, defaults(), rules.FormatRules())
}

// FormatRange formats the byte range [start, end) of src as a standalone
// document and splices it back. Offsets are clamped to src.
func FormatRange(src string, start, end int) string {
	return formatter.FormatRange(src, start, end, defaults(), rules.FormatRules())
}

// FormatContext is Format with cancellation.
func FormatContext(ctx context.Context, src string) (string, error) {
	return formatter.FormatContext(ctx, src, defaults(), rules.FormatRules())
}

// Edits returns the line replacements that turn src into Format(src), in
// ascending order. It returns nil when src is already formatted. When the
// changes are too many to match line by line, the whole changed region
// comes back as one edit.
func Edits(src string) []Edit {
	hunks := diff.Hunks(src, Format(src), 0)
	if len(hunks) == 0 {
		return nil
	}

	edits := make([]Edit, len(hunks))
	for i, h := range hunks {
		edits[i] = Edit{
			Start:   h.OldStart,
			End:     h.OldStart + h.OldLines,
			NewText: h.Added(),
		}
	}
	return edits
}

// Apply performs edits on src. Line numbers in every edit refer to src
// as given; edits that overlap an earlier one are ignored.
func Apply(src string, edits []Edit) string {
	if len(edits) == 0 {
		return src
	}

	lines := splitLines(src)
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int { return a.Start - b.Start })

	var b strings.Builder
	pos := 0
	for _, e := range sorted {
		start := min(max(e.Start, 0), len(lines))
		end := min(max(e.End, start), len(lines))
		if start < pos {
			continue
		}
		b.WriteString(strings.Join(lines[pos:start], ""))
		b.WriteString(e.NewText)
		pos = end
	}
	b.WriteString(strings.Join(lines[pos:], ""))
	return b.String()
}

// IsFunctionDefinition reports whether line begins a named function
// definition.
func IsFunctionDefinition(line string) bool {
	return format.IsFunctionDefinition(line)
}

func defaults() *config.FormatterConfig {
	return &config.DefaultConfig().Formatter
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
