package rules

import (
	"slices"
	"testing"
)

func TestRegistrationOrder(t *testing.T) {
	want := []string{
		"trim_trailing_whitespace",
		"collapse_blank_lines",
		"operator_spacing",
		"keyword_spacing",
		"space_after_comment",
		"function_spacing",
		"fix_indentation",
		"insert_final_newline",
	}

	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestFormatRulesReturnsCopy(t *testing.T) {
	got := FormatRules()
	got[0] = nil

	if FormatRules()[0] == nil {
		t.Error("FormatRules exposed the registry slice")
	}
}
