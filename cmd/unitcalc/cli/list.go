package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/calc"
)

func runList(cmd *cobra.Command, args []string) error {
	reports := calc.CurrencyReports(reg)
	if cfg.Output != calc.FormatText {
		return calc.Write(cmd.OutOrStdout(), cfg.Output, reports)
	}
	for _, r := range reports {
		if err := calc.Write(cmd.OutOrStdout(), cfg.Output, r); err != nil {
			return err
		}
	}
	return nil
}

// List returns the command listing the registered currencies.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the registered currencies and ratios.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

type opReport struct {
	Name       string   `json:"name"`
	Synonyms   []string `json:"synonyms"`
	Comparison bool     `json:"comparison,omitempty"`
}

func (r opReport) String() string {
	return r.Name + ": " + strings.Join(r.Synonyms, " ")
}

func runOps(cmd *cobra.Command, args []string) error {
	ops := units.Ops()
	reports := make([]opReport, len(ops))
	for i, op := range ops {
		reports[i] = opReport{
			Name:       op.String(),
			Synonyms:   op.Synonyms(),
			Comparison: op.IsComparison(),
		}
	}
	if cfg.Output != calc.FormatText {
		return calc.Write(cmd.OutOrStdout(), cfg.Output, reports)
	}
	for _, r := range reports {
		if err := calc.Write(cmd.OutOrStdout(), cfg.Output, r); err != nil {
			return err
		}
	}
	return nil
}

// Ops returns the command listing the supported operations.
func Ops() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Lists the supported operations and their synonyms.",
		Args:  cobra.NoArgs,
		RunE:  runOps,
	}
}
