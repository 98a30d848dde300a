package format

import (
	"testing"

	"github.com/donaldgifford/blockfmt/internal/config"
	"github.com/donaldgifford/blockfmt/internal/source"
)

func TestKeywordSpacing(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"if", "if(x)", "if (x)"},
		{"for", "for(i := 0;i < 3;i++)", "for (i := 0;i < 3;i++)"},
		{"while", "while(true)", "while (true)"},
		{"switch", "switch(x)", "switch (x)"},
		{"catch", "}catch(e){", "}catch (e) {"},
		{"anonymous function", "f := function(a)", "f := function (a)"},
		{"extra spaces collapsed", "if   (x)", "if (x)"},
		{"already spaced", "if (x) {", "if (x) {"},
		{"brace spacing", "if (x){", "if (x) {"},
		{"brace spacing collapses", "if (x)    {", "if (x) {"},
		{"partial identifier", "ifX(y)", "ifX(y)"},
		{"suffix identifier", "notif(y)", "notif(y)"},
		{"keyword without paren", "return iffy", "return iffy"},
		{"named function untouched", "function main(){", "function main() {"},
		{"keyword in string", `print("if(")`, `print("if(")`},
		{"keyword in comment", "x := 1 // if(y)", "x := 1 // if(y)"},
		{"nested", "if(a){while(b){", "if (a) {while (b) {"},
	}

	rule := &KeywordSpacing{}
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

func TestKeywordSpacingDisabled(t *testing.T) {
	rule := &KeywordSpacing{}
	cfg := &config.DefaultConfig().Formatter
	cfg.KeywordSpacing = false

	result := rule.Format(source.Document{"if(x){"}, cfg)
	if result[0] != "if(x){" {
		t.Errorf("disabled rule should not modify: got %q", result[0])
	}
}
