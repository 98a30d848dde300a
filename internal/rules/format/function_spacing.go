package format

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

// functionRe matches a named function definition at the start of a
// trimmed line.
var functionRe = regexp.MustCompile(`^function\s+\w+\s*\(`)

// IsFunctionDefinition reports whether line starts a named function.
func IsFunctionDefinition(line string) bool {
	return functionRe.MatchString(strings.TrimSpace(line))
}

// FunctionSpacing keeps function definitions apart from surrounding code.
// In "preserve" mode it leaves the document as is; in "separate" mode it
// puts one blank line before each definition and after its closing brace.
type FunctionSpacing struct{}

// Name returns the config key for this rule.
func (*FunctionSpacing) Name() string {
	return "function_spacing"
}

// Format applies the configured function spacing mode.
func (*FunctionSpacing) Format(doc source.Document, cfg *config.FormatterConfig) source.Document {
	if cfg.FunctionSpacing != config.FunctionSpacingSeparate {
		return doc
	}
	return separateFunctions(doc)
}

// openFunction tracks a definition until its braces balance.
type openFunction struct {
	base   int // brace depth before the definition line.
	line   int // index of the definition line.
	opened bool
}

func separateFunctions(doc source.Document) source.Document {
	result := make(source.Document, 0, len(doc)+4)
	var open []openFunction
	depth := 0
	closedFunction := false

	for i, text := range doc {
		line := source.Parse(text)

		if closedFunction {
			if !line.IsBlank() && !startsWithCloser(line.Trimmed()) {
				result = append(result, "")
			}
			closedFunction = false
		}

		isDef := IsFunctionDefinition(text)
		if isDef {
			result = insertBlankBefore(result)
		}

		result = append(result, text)
		delta := line.BraceDelta()

		switch {
		case isDef && delta <= 0 && strings.Contains(line.Code(), "{"):
			// Body opens and closes on the definition line.
			closedFunction = true
		case isDef:
			open = append(open, openFunction{base: depth, line: i})
		}
		depth += delta

		for len(open) > 0 {
			top := &open[len(open)-1]
			if depth > top.base {
				top.opened = true
				break
			}
			if !top.opened {
				// A definition whose body does not open on the next line
				// is a declaration; stop tracking it.
				if i > top.line && !line.IsBlank() {
					open = open[:len(open)-1]
					continue
				}
				break
			}
			open = open[:len(open)-1]
			closedFunction = true
		}
	}

	return result
}

// insertBlankBefore adds a blank line ahead of the comment lines that
// directly precede a definition, unless the definition starts the document,
// already follows a blank line or opens an enclosing block.
func insertBlankBefore(result source.Document) source.Document {
	at := len(result)
	for at > 0 && isCommentOnly(result[at-1]) {
		at--
	}
	if at == 0 {
		return result
	}

	prev := source.Parse(result[at-1])
	if prev.IsBlank() || strings.HasSuffix(strings.TrimSpace(prev.Code()), "{") {
		return result
	}

	result = append(result, "")
	copy(result[at+1:], result[at:])
	result[at] = ""
	return result
}

func isCommentOnly(text string) bool {
	line := source.Parse(text)
	return line.CommentIndex() >= 0 && strings.TrimSpace(line.Code()) == ""
}
