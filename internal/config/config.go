// Package config defines the configuration types and defaults for blockfmt.
package config

import (
	"errors"
	"fmt"
)

// Function spacing modes.
const (
	FunctionSpacingPreserve = "preserve"
	FunctionSpacingSeparate = "separate"
)

// Config is the top-level configuration.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter" toml:"formatter"`
	Files     FilesConfig     `yaml:"files" toml:"files"`
}

// FormatterConfig toggles the individual formatting rules. Indentation and
// tab widths are fixed at two spaces and are not configurable.
type FormatterConfig struct {
	TrimTrailingWhitespace bool   `yaml:"trim_trailing_whitespace" toml:"trim_trailing_whitespace"`
	ExpandTabs             bool   `yaml:"expand_tabs" toml:"expand_tabs"`
	CollapseBlankLines     bool   `yaml:"collapse_blank_lines" toml:"collapse_blank_lines"`
	OperatorSpacing        bool   `yaml:"operator_spacing" toml:"operator_spacing"`
	KeywordSpacing         bool   `yaml:"keyword_spacing" toml:"keyword_spacing"`
	SpaceAfterComment      bool   `yaml:"space_after_comment" toml:"space_after_comment"`
	FunctionSpacing        string `yaml:"function_spacing" toml:"function_spacing"`
	FixIndentation         bool   `yaml:"fix_indentation" toml:"fix_indentation"`
	InsertFinalNewline     bool   `yaml:"insert_final_newline" toml:"insert_final_newline"`
}

// FilesConfig controls which files the CLI picks up when walking
// directories.
type FilesConfig struct {
	Extensions []string `yaml:"extensions" toml:"extensions"`
	Exclude    []string `yaml:"exclude" toml:"exclude"`
}

// DefaultConfig returns a Config with the default rule set enabled.
func DefaultConfig() *Config {
	return &Config{
		Formatter: FormatterConfig{
			TrimTrailingWhitespace: true,
			ExpandTabs:             true,
			CollapseBlankLines:     true,
			OperatorSpacing:        true,
			KeywordSpacing:         true,
			SpaceAfterComment:      true,
			FunctionSpacing:        FunctionSpacingPreserve,
			FixIndentation:         true,
			InsertFinalNewline:     false,
		},
		Files: FilesConfig{
			Extensions: []string{".bs", ".blockscript"},
			Exclude:    []string{".git", "node_modules"},
		},
	}
}

// Validate reports settings that no rule can act on.
func (c *Config) Validate() error {
	switch c.Formatter.FunctionSpacing {
	case FunctionSpacingPreserve, FunctionSpacingSeparate:
	default:
		return fmt.Errorf("invalid function_spacing %q: want %q or %q",
			c.Formatter.FunctionSpacing, FunctionSpacingPreserve, FunctionSpacingSeparate)
	}

	if len(c.Files.Extensions) == 0 {
		return errors.New("files.extensions must not be empty")
	}
	return nil
}
