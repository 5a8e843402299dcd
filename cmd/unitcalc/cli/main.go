// Package cli implements the commands of unitcalc.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/calc"
)

var (
	configFile string

	cfg    calc.Config
	reg    *units.Registry
	logger *slog.Logger
)

// Main returns the root command of unitcalc.
func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "unitcalc",
		Short:        "unitcalc evaluates decimal arithmetic on amounts tagged with units.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.NewViper(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			cfg, err = calc.LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err = cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			reg, err = cfg.Registry()
			if err != nil {
				return err
			}
			logger.Debug("loaded config",
				"file", v.ConfigFileUsed(),
				"currencies", len(reg.Currencies()),
				"places", cfg.Places,
				"output", cfg.Output)
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) { _ = cmd.Help() },
	}

	def := calc.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "optional config file (yaml, json or toml)")
	pf.Int(calc.KeyPlaces, def.Places, "digits after the decimal point when printing amounts")
	pf.String(calc.KeyLogLevel, def.LogLevel, "log level: debug, info, warn or error")
	pf.Bool(calc.KeyNoColor, def.NoColor, "disable colorized log output")
	pf.StringP(calc.KeyOutput, "o", def.Output, "output format: text, json or yaml")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml")

	rootCmd.AddCommand(Eval())
	rootCmd.AddCommand(Fixed())
	rootCmd.AddCommand(List())
	rootCmd.AddCommand(Ops())

	return rootCmd
}
