package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/units/internal/calc"
)

func runEval(cmd *cobra.Command, args []string) error {
	e := calc.NewEvaluator(reg, logger)
	res, err := e.EvalString(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return calc.Write(cmd.OutOrStdout(), cfg.Output, res.Report(cfg.Places))
}

// Eval returns the command evaluating an expression.
func Eval() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluates an expression from left to right.",
		Long: `Evaluates an expression of the form "operand { op operand }" from left to right.

An operand is a number followed by an optional unit, such as "20 DAI",
"4 USD/DAI" or "1500000000000000000 ETH.wei". The first operand must have
a unit. An op is an operation name or synonym, such as "plus", "*" or "lt".`,
		Example: `unitcalc eval 20 DAI times 4 USD/DAI
unitcalc eval 4 USD / 20 DAI
unitcalc eval 1500000000000000000 ETH.wei gt 1 ETH`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
}
