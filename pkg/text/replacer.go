// Package text applies ordered regular-expression substitutions to text.
package text

import (
	"context"
	"io"
)

// ReplacementRule defines a single regex substitution
type ReplacementRule struct {
	// Pattern is an RE2 regular expression
	Pattern string `json:"pattern" yaml:"pattern"`

	// Replacement is inserted literally for every match, no $ expansion
	Replacement string `json:"replacement" yaml:"replacement"`
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of matches replaced
	ReplacementCount int

	// RuleCounts holds the matches replaced by each rule, in rule order
	RuleCounts []int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules in order, each one to the output of the previous
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
