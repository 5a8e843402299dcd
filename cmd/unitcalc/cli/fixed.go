package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/calc"
)

var fixedOptDenom string

type fixedReport struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
	Fixed  string `json:"fixed"`
}

func (r fixedReport) String() string {
	return r.Fixed
}

func runFixed(cmd *cobra.Command, args []string) error {
	denom, err := units.ParseDenom(fixedOptDenom)
	if err != nil {
		return err
	}
	curr, err := calc.ParseCurrency(reg, args[1])
	if err != nil {
		return err
	}
	a, err := reg.Lookup(args[0], curr)
	if err != nil {
		return err
	}
	logger.Debug("rendering fixed-point string", "amount", a, "denom", denom)
	return calc.Write(cmd.OutOrStdout(), cfg.Output, fixedReport{
		Amount: a.StringFixed(cfg.Places),
		Denom:  denom.String(),
		Fixed:  a.FixedString(denom),
	})
}

// Fixed returns the command printing an amount as an integer number of
// sub-units.
func Fixed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed AMOUNT UNIT",
		Short: "Prints an amount as an integer number of sub-units, truncated toward zero.",
		Long: `Prints an amount as an integer number of sub-units, truncated toward zero.

UNIT accepts the same specifiers as eval, including a denomination suffix:
"1500000000000000000 ETH.wei" is read as 1.5 ETH.`,
		Example: `unitcalc fixed 1.5 DAI --denom wei
unitcalc fixed 0.25 MKR --denom ray
unitcalc fixed 1500000000000000000 ETH.wei --denom 6`,
		Args: cobra.ExactArgs(2),
		RunE: runFixed,
	}
	cmd.Flags().StringVarP(&fixedOptDenom, "denom", "d", "wei", "denomination: wei, ray, rad or a number of decimal places")
	return cmd
}
