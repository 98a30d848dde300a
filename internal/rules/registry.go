// Package rules manages registration of format rules.
package rules

import (
	"slices"

	"github.com/donaldgifford/blockfmt/internal/formatter"
)

var formatRules []formatter.FormatRule

// RegisterFormatRule adds a formatting rule to the registry.
// Rules are applied in the order they are registered.
func RegisterFormatRule(r formatter.FormatRule) {
	formatRules = append(formatRules, r)
}

// FormatRules returns all registered formatting rules in execution order.
// The returned slice is a copy.
func FormatRules() []formatter.FormatRule {
	return slices.Clone(formatRules)
}

// Names returns the config keys of the registered rules in execution order.
func Names() []string {
	names := make([]string, len(formatRules))
	for i, r := range formatRules {
		names[i] = r.Name()
	}
	return names
}
