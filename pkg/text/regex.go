package text

import (
	"context"
	"io"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// RegexTextReplacer implements TextReplacer with sequential global regex substitution
type RegexTextReplacer struct{}

var _ TextReplacer = (*RegexTextReplacer)(nil)

// NewRegexTextReplacer creates a new RegexTextReplacer
func NewRegexTextReplacer() *RegexTextReplacer {
	return &RegexTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		RuleCounts:      make([]int, len(rules)),
	}

	currentContent := string(originalContent)
	for i, re := range compiled {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying rule %d: %w", i, err)
		}

		// matches are counted against the text this rule actually sees
		count := len(re.FindAllStringIndex(currentContent, -1))
		if count == 0 {
			continue
		}

		currentContent = re.ReplaceAllLiteralString(currentContent, rules[i].Replacement)
		result.RuleCounts[i] = count
		result.ReplacementCount += count

		logger.Debug().
			Int("rule", i).
			Str("pattern", rules[i].Pattern).
			Str("replacement", rules[i].Replacement).
			Int("matches", count).
			Msg("applied rule")
	}

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = currentContent != string(originalContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexTextReplacer) ValidateRules(rules []ReplacementRule) error {
	_, err := compileRules(rules)
	return err
}

// Apply replays rules over content and returns the final text
func Apply(content string, rules []ReplacementRule) (string, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return "", err
	}
	for i, re := range compiled {
		content = re.ReplaceAllLiteralString(content, rules[i].Replacement)
	}
	return content, nil
}

func compileRules(rules []ReplacementRule) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(rules))
	for i, rule := range rules {
		if rule.Pattern == "" {
			return nil, errors.Errorf("rule %d: pattern is required", i)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d: compiling pattern %q: %w", i, rule.Pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
