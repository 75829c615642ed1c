package main

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/cmd/recolor/commands"
	"github.com/walteh/recolor/cmd/recolor/opts"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/palette"
	"github.com/walteh/recolor/pkg/rewrite"
)

// newRootCmd builds the command tree; running the root rewrites the dashboard page
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Switch the dashboard page to the dark colour palette",
		Long: `recolor rewrites ` + palette.DefaultTarget + ` in place, swapping
light-theme colour utility classes for their dark-theme equivalents.
Rules are applied in a fixed order, each one to the output of the last.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := setupLogging(o)
			cmd.SetContext(log.NewContext(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, o)
		},
	}

	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)
	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRulesCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&o.DryRun, "dry-run", "n", false, "print the changes instead of writing them")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "print match counts for every rule")
}

// setupLogging configures zerolog based on flags
func setupLogging(o *opts.RootOpts) *log.Logger {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return log.New(o.Stdout, o.Stderr, level)
}

func runRewrite(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	rules := palette.DarkThemeRules()

	rw := rewrite.New(rewrite.Options{Fs: o.Fs, DryRun: o.DryRun})
	result, err := rw.Rewrite(ctx, palette.DefaultTarget, rules)
	if err != nil {
		return errors.Errorf("rewriting %s: %w", palette.DefaultTarget, err)
	}

	if o.Verbose {
		logger.Header(palette.DefaultTarget)
		for i, rule := range rules {
			logger.LogRule(ctx, log.RuleOperation{
				Index:       i,
				Pattern:     rule.Pattern,
				Replacement: rule.Replacement,
				Matches:     result.RuleCounts[i],
			})
		}
	}

	if o.DryRun {
		if !result.WasModified {
			logger.Info("no changes")
			return nil
		}
		for _, line := range strings.Split(strings.TrimSuffix(rewrite.Diff(result), "\n"), "\n") {
			logger.Line(line)
		}
		logger.Successf("%d replacements, nothing written", result.ReplacementCount)
		return nil
	}

	logger.Done(palette.CompletionMessage)
	return nil
}
