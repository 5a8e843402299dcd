// Package calc evaluates unit-checked arithmetic expressions for the
// unitcalc command.
package calc

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/units"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys, for example UNITCALC_LOG_LEVEL.
const EnvPrefix = "UNITCALC"

// Configuration keys.
const (
	KeyCurrencies = "currencies"
	KeyRatios     = "ratios"
	KeyPlaces     = "places"
	KeyLogLevel   = "log-level"
	KeyNoColor    = "no-color"
	KeyOutput     = "output"
)

// Config holds the settings of the calculator.
type Config struct {
	// Currencies lists atomic symbols registered in addition to the
	// predefined ones.
	Currencies []string `mapstructure:"currencies"`
	// Ratios lists ratio symbols, such as "USD/FOO", registered in addition
	// to the predefined ones. Both parts must be registered currencies.
	Ratios   []string `mapstructure:"ratios"`
	Places   int      `mapstructure:"places"`
	LogLevel string   `mapstructure:"log-level"`
	NoColor  bool     `mapstructure:"no-color"`
	Output   string   `mapstructure:"output"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable or flag overrides a key.
func DefaultConfig() Config {
	return Config{
		Places:   2,
		LogLevel: "warn",
		Output:   FormatText,
	}
}

// NewViper returns a viper that reads configuration keys from flags in fs,
// from UNITCALC_* environment variables and from configFile, in that order
// of precedence. An empty configFile is ignored.
func NewViper(fs *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault(KeyCurrencies, def.Currencies)
	v.SetDefault(KeyRatios, def.Ratios)
	v.SetDefault(KeyPlaces, def.Places)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyNoColor, def.NoColor)
	v.SetDefault(KeyOutput, def.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range []string{KeyPlaces, KeyLogLevel, KeyNoColor, KeyOutput} {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", key, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadConfig decodes and validates the configuration held by v.
func LoadConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate returns an error if a setting is out of range.
func (c Config) Validate() error {
	if c.Places < 0 {
		return fmt.Errorf("places must be non-negative, got %v", c.Places)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}

// Registry returns the predefined currencies extended with the currencies
// and ratios of the configuration.
func (c Config) Registry() (*units.Registry, error) {
	currs := make([]units.Currency, 0, len(c.Currencies)+len(c.Ratios))
	for _, s := range c.Currencies {
		if units.DefaultRegistry.Contains(s) {
			continue
		}
		curr, err := units.NewCurrency(strings.ToUpper(s))
		if err != nil {
			return nil, err
		}
		currs = append(currs, curr)
	}
	reg, err := units.DefaultRegistry.With(currs...)
	if err != nil {
		return nil, err
	}

	currs = currs[:0]
	for _, s := range c.Ratios {
		u, err := units.ParseUnit(strings.ToUpper(s))
		if err != nil {
			return nil, err
		}
		if !u.IsRatio() {
			return nil, fmt.Errorf("%q is not a ratio: %w", s, units.ErrInvalidUnit)
		}
		if reg.Contains(u.Symbol()) {
			continue
		}
		curr, err := reg.Currency(u.Symbol())
		if err != nil {
			return nil, err
		}
		currs = append(currs, curr)
	}
	return reg.With(currs...)
}

// Logger returns a logger writing colorized records to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    c.NoColor,
	})
	return slog.New(h), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parsing log level: %w", err)
	}
	return level, nil
}
