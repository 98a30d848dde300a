package format

import (
	"strings"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// operator is a token that gets one space on either side. A match is
// rejected when the byte before it is in notAfter or the byte after it is
// in notBefore, which keeps multi-character operators in one piece.
type operator struct {
	token     string
	notAfter  string
	notBefore string
}

// operatorSteps run in order: every step sees the output of the previous
// one, so two-character operators are spaced before single-character ones
// are searched.
var operatorSteps = [][]operator{
	{{token: ":=", notAfter: ":", notBefore: "="}},
	{{token: "=", notAfter: "=!<>:", notBefore: "=>"}},
	{{token: "==", notAfter: "=!<>:", notBefore: "="}},
	{{token: "<>", notAfter: "<", notBefore: "=>"}},
	{{token: "!=", notAfter: "!", notBefore: "="}},
	{
		{token: "<=", notAfter: "<>=", notBefore: "="},
		{token: ">=", notAfter: "<>=", notBefore: "="},
	},
	{
		{token: "<", notAfter: "<>=", notBefore: "<>="},
		{token: ">", notAfter: "<>=!-", notBefore: "<>="},
	},
}

// OperatorSpacing pads assignment and comparison operators with single
// spaces.
type OperatorSpacing struct{}

// Name returns the config key for this rule.
func (*OperatorSpacing) Name() string {
	return "operator_spacing"
}

// Format rewrites the code segment of every line. String literals and the
// comment segment are left untouched.
func (*OperatorSpacing) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if !cfg.OperatorSpacing {
		return doc
	}
	return doc.Map(spaceOperators)
}

func spaceOperators(text string) string {
	line := source.Parse(text)
	if line.IsBlank() {
		return text
	}

	code := line.MapCode(func(span string) string {
		for _, step := range operatorSteps {
			span = applyOperators(span, step)
		}
		return span
	})

	// Indentation is recomputed later; drop whatever the code now starts with.
	return strings.TrimLeft(code, " \t")
}

// applyOperators scans s once, replacing the whitespace around every
// accepted operator with a single space on each side. The left guard reads
// the output built so far, so a match is judged after earlier matches on
// the same line have been rewritten.
func applyOperators(s string, ops []operator) string {
	out := make([]byte, 0, len(s)+8)

	for i := 0; i < len(s); {
		op, ok := matchOperator(s, i, out, ops)
		if !ok {
			out = append(out, s[i])
			i++
			continue
		}

		for len(out) > 0 && isBlank(out[len(out)-1]) {
			out = out[:len(out)-1]
		}
		out = append(out, ' ')
		out = append(out, op.token...)
		out = append(out, ' ')

		i += len(op.token)
		for i < len(s) && isBlank(s[i]) {
			i++
		}
	}

	return string(out)
}

func matchOperator(s string, i int, out []byte, ops []operator) (operator, bool) {
	for _, op := range ops {
		if !strings.HasPrefix(s[i:], op.token) {
			continue
		}
		if len(out) > 0 && strings.IndexByte(op.notAfter, out[len(out)-1]) >= 0 {
			continue
		}
		if next := i + len(op.token); next < len(s) && strings.IndexByte(op.notBefore, s[next]) >= 0 {
			continue
		}
		return op, true
	}
	return operator{}, false
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}
