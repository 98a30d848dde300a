package format

import (
	"regexp"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// Keywords that take exactly one space before an opening parenthesis.
var Keywords = []string{"if", "for", "while", "switch", "catch", "function"}

// keywordRes holds one pattern per keyword, in Keywords order.
var keywordRes = compileKeywords(Keywords)

// blockOpenRe matches a closing parenthesis followed by an opening brace.
var blockOpenRe = regexp.MustCompile(`\)\s*\{`)

func compileKeywords(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		res[i] = regexp.MustCompile(`\b(` + regexp.QuoteMeta(w) + `)\s*\(`)
	}
	return res
}

// KeywordSpacing puts a single space between control keywords and their
// parenthesis, and between ")" and "{".
type KeywordSpacing struct{}

// Name returns the config key for this rule.
func (*KeywordSpacing) Name() string {
	return "keyword_spacing"
}

// Format rewrites the code spans of every line.
func (*KeywordSpacing) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.KeywordSpacing {
		return doc
	}

	return doc.Map(func(line string) string {
		return source.Parse(line).MapCode(spaceKeywords)
	})
}

func spaceKeywords(span string) string {
	for _, re := range keywordRes {
		span = re.ReplaceAllString(span, "${1} (")
	}
	return blockOpenRe.ReplaceAllString(span, ") {")
}
