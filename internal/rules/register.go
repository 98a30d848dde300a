package rules

import (
	"github.com/donaldgifford/blockfmt/internal/rules/format"
)

func init() {
	// Rules are registered in execution order.
	// Line cleanup:
	RegisterFormatRule(&format.TrailingWhitespace{})
	RegisterFormatRule(&format.BlankLines{})

	// Spacing:
	RegisterFormatRule(&format.OperatorSpacing{})
	RegisterFormatRule(&format.KeywordSpacing{})
	RegisterFormatRule(&format.CommentSpacing{})
	RegisterFormatRule(&format.FunctionSpacing{})

	// Layout:
	RegisterFormatRule(&format.Indentation{})
	RegisterFormatRule(&format.FinalNewline{})
}
