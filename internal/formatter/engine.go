// Package formatter provides the formatting engine and rule interface.
package formatter

import (
	"context"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// Run applies each formatting rule in order, piping the output of one
// as input to the next.
func Run(doc source.Document, cfg *config.FormatterConfig, rules []FormatRule) source.Document {
	result := doc
	for _, rule := range rules {
		result = rule.Format(result, cfg)
	}
	return result
}

// Format splits src into lines, runs the rules and joins the result.
func Format(src string, cfg *config.FormatterConfig, rules []FormatRule) string {
	return Run(source.Split(src), cfg, rules).String()
}

// FormatRange formats the byte range [start, end) of src on its own and
// splices the result back. Offsets are clamped to the bounds of src.
func FormatRange(src string, start, end int, cfg *config.FormatterConfig, rules []FormatRule) string {
	start = min(max(start, 0), len(src))
	end = min(max(end, start), len(src))

	return src[:start] + Format(src[start:end], cfg, rules) + src[end:]
}

// FormatContext runs Format on its own goroutine. If ctx is done first, the
// pipeline is left to finish in the background, its result is discarded and
// ctx.Err() is returned.
func FormatContext(ctx context.Context, src string, cfg *config.FormatterConfig, rules []FormatRule) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan string, 1)
	go func() {
		done <- Format(src, cfg, rules)
	}()

	select {
	case out := <-done:
		return out, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
