package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/govalues/units"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the serializable form of a [Result].
type Report struct {
	Expr      string `json:"expr"`
	Amount    string `json:"amount,omitempty"`
	Magnitude string `json:"magnitude,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Ratio     bool   `json:"ratio,omitempty"`
	Result    *bool  `json:"result,omitempty"`
}

// Report returns the serializable form of the result, with amounts rounded
// to the given number of digits after the decimal point.
func (r Result) Report(places int) Report {
	if r.IsBool {
		b := r.Bool
		return Report{Expr: r.Expr, Result: &b}
	}
	return Report{
		Expr:      r.Expr,
		Amount:    r.Amount.StringFixed(places),
		Magnitude: r.Amount.Magnitude().Text('f'),
		Unit:      r.Amount.Symbol(),
		Ratio:     r.Amount.IsRatio(),
	}
}

// Write renders v to w in the given format.
// The text format is produced by fmt.Fprintln.
func Write(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatText:
		_, err = fmt.Fprintln(w, v)
		return err
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// String implements the [fmt.Stringer] interface and returns the text form
// of the report.
func (r Report) String() string {
	if r.Result != nil {
		return strconv.FormatBool(*r.Result)
	}
	return r.Amount
}

// CurrencyReport is the serializable form of a registered currency.
type CurrencyReport struct {
	Symbol string `json:"symbol"`
	Ratio  bool   `json:"ratio,omitempty"`
	Shift  int    `json:"shift,omitempty"`
}

// CurrencyReports returns the serializable form of the currencies of reg.
func CurrencyReports(reg *units.Registry) []CurrencyReport {
	currs := reg.Currencies()
	reports := make([]CurrencyReport, len(currs))
	for i, c := range currs {
		reports[i] = CurrencyReport{
			Symbol: c.Symbol(),
			Ratio:  c.Unit().IsRatio(),
			Shift:  c.Shift(),
		}
	}
	return reports
}

// String implements the [fmt.Stringer] interface.
func (c CurrencyReport) String() string {
	if c.Shift != 0 {
		return fmt.Sprintf("%s (shift %d)", c.Symbol, c.Shift)
	}
	return c.Symbol
}
