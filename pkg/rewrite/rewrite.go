// Package rewrite rewrites a single file in place through an ordered rule list.
package rewrite

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/text"
)

// 💾 IOError is the only failure a rewrite reports on its own behalf
type IOError struct {
	Op   string // stat, read or write
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// 🔧 Options configures a Rewriter
type Options struct {
	// Fs defaults to the OS filesystem
	Fs afero.Fs
	// Replacer defaults to text.NewRegexTextReplacer()
	Replacer text.TextReplacer
	// DryRun computes the result without writing it back
	DryRun bool
}

// ✏️ Rewriter reads a file, applies rules in order and writes it back over itself
type Rewriter struct {
	fs       afero.Fs
	replacer text.TextReplacer
	dryRun   bool
}

// 🏭 New creates a Rewriter
func New(opts Options) *Rewriter {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexTextReplacer()
	}
	return &Rewriter{
		fs:       opts.Fs,
		replacer: opts.Replacer,
		dryRun:   opts.DryRun,
	}
}

// 🎯 Rewrite replaces the contents of path with the rules applied to it.
// Nothing is written unless every rule has been applied.
func (r *Rewriter) Rewrite(ctx context.Context, path string, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, errors.WithStack(&IOError{Op: "stat", Path: path, Err: err})
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.WithStack(&IOError{Op: "read", Path: path, Err: err})
	}
	logger.Debug().Int("bytes", len(content)).Int("rules", len(rules)).Msg("read file")

	result, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("applying rules to %s: %w", path, err)
	}

	if r.dryRun {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("dry run, not writing")
		return result, nil
	}

	if err := afero.WriteFile(r.fs, path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, errors.WithStack(&IOError{Op: "write", Path: path, Err: err})
	}

	logger.Debug().
		Int("bytes", len(result.ModifiedContent)).
		Int("replacements", result.ReplacementCount).
		Msg("wrote file")

	return result, nil
}

// IsIOError reports whether err came from reading or writing the target file
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
