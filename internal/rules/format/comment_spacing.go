package format

import (
	"regexp"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// commentRe matches the comment marker and the first non-space character
// after it.
var commentRe = regexp.MustCompile(`^//\s*(\S)`)

// CommentSpacing ensures exactly one space after the "//" comment marker.
type CommentSpacing struct{}

// Name returns the config key for this rule.
func (*CommentSpacing) Name() string {
	return "space_after_comment"
}

// Format normalizes the marker of each line's comment segment. Markers
// inside string literals are not comments and stay as written.
func (*CommentSpacing) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.SpaceAfterComment {
		return doc
	}
	return doc.Map(normalizeComment)
}

func normalizeComment(text string) string {
	line := source.Parse(text)
	if line.CommentIndex() < 0 {
		return text
	}
	return line.Code() + commentRe.ReplaceAllString(line.Comment(), "// ${1}")
}
