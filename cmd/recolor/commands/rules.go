package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/recolor/cmd/recolor/opts"
	"github.com/walteh/recolor/pkg/palette"
	"github.com/walteh/recolor/pkg/text"
)

// RuleSet is the document written by `rules --output yaml`
type RuleSet struct {
	Target string                 `yaml:"target"`
	Rules  []text.ReplacementRule `yaml:"rules"`
}

// NewRulesCmd creates the rules command
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the replacement rules in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := palette.DarkThemeRules()

			switch output {
			case "table":
				data := pterm.TableData{{"#", "Pattern", "Replacement"}}
				for i, rule := range rules {
					data = append(data, []string{strconv.Itoa(i), rule.Pattern, rule.Replacement})
				}
				table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return errors.Errorf("rendering rule table: %w", err)
				}
				_, err = fmt.Fprintln(o.Stdout, table)
				return err
			case "yaml":
				enc := yaml.NewEncoder(o.Stdout)
				enc.SetIndent(2)
				if err := enc.Encode(RuleSet{Target: palette.DefaultTarget, Rules: rules}); err != nil {
					return errors.Errorf("encoding rules: %w", err)
				}
				return enc.Close()
			default:
				return errors.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or yaml")

	return cmd
}
