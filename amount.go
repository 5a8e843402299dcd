package units

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal"
)

// defaultPlaces is the number of digits after the decimal point used by [Amount.String].
const defaultPlaces = 2

// Amount type represents a decimal magnitude tagged with a [Unit].
// An amount whose unit is a ratio, such as "USD/DAI", is a ratio amount;
// every other amount is a simple amount.
// Its zero value corresponds to "0.00 XXX", where XXX indicates an unknown unit.
//
// Amount is immutable: every operation returns a new amount.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	unit  Unit
	value *apd.Decimal // never NaN, never modified after construction
}

// newAmountUnsafe creates a new amount without checking the magnitude.
// Use it only if d is not NaN and will never be modified.
func newAmountUnsafe(u Unit, d *apd.Decimal) Amount {
	return Amount{unit: u, value: d}
}

// NewAmount converts v to an amount denominated in unit u.
// The following types are supported:
//   - signed and unsigned integers, float32 and float64;
//   - numeric strings, such as "1.5", "-2e18" or "Infinity";
//   - [apd.Decimal] and *[apd.Decimal];
//   - *[big.Int];
//   - [Amount], [Number] and any other [Quantity];
//   - [decimal.Decimal] from github.com/govalues/decimal;
//   - Decimal from github.com/shopspring/decimal.
//
// NewAmount returns an error wrapping [ErrInvalidAmount] if v is of
// another type, is NaN, or is a string that does not represent a number.
//
// [big.Int]: https://pkg.go.dev/math/big#Int
func NewAmount(u Unit, v any) (Amount, error) {
	return NewAmountShifted(u, v, 0)
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(u Unit, v any) Amount {
	a, err := NewAmount(u, v)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", u, v, err))
	}
	return a
}

// NewAmountShifted returns an amount equal to v * 10^shift.
// For example, NewAmountShifted(ETH, 100, -2) is equal to 1 ETH.
// See [NewAmount] for the list of supported types.
func NewAmountShifted(u Unit, v any, shift int) (Amount, error) {
	d, err := toDecimal(v)
	if err != nil {
		return Amount{}, err
	}
	d, err = shiftDecimal(d, shift)
	if err != nil {
		return Amount{}, fmt.Errorf("shifting %v by %v: %w", v, shift, err)
	}
	return newAmountUnsafe(u, d), nil
}

// NewAmountFromDenom interprets v as a number of sub-units and returns the
// equivalent amount, that is v / 10^denom.
// For example, NewAmountFromDenom(MKR, "2110000000000000000", Wei) is equal to 2.11 MKR.
func NewAmountFromDenom(u Unit, v any, denom Denom) (Amount, error) {
	return NewAmountShifted(u, v, -int(denom))
}

// Unit returns the unit of the amount.
func (a Amount) Unit() Unit {
	return a.unit
}

// Symbol returns the symbol of the unit of the amount.
func (a Amount) Symbol() string {
	return a.unit.Symbol()
}

// Currency returns the factory that creates amounts in the same unit.
func (a Amount) Currency() Currency {
	return Currency{unit: a.unit}
}

// IsRatio returns true if the amount is denominated in a ratio unit.
func (a Amount) IsRatio() bool {
	return a.unit.IsRatio()
}

func (a Amount) decimal() *apd.Decimal {
	if a.value == nil {
		return new(apd.Decimal)
	}
	return a.value
}

// Magnitude returns a copy of the arbitrary-precision magnitude of the amount.
func (a Amount) Magnitude() *apd.Decimal {
	return new(apd.Decimal).Set(a.decimal())
}

// Decimal returns the magnitude as a [decimal.Decimal], rounding it to
// [decimal.MaxPrec] significant digits if necessary.
//
// Decimal returns an error if the magnitude is infinite or its integer part
// has more than [decimal.MaxPrec] digits.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(a.decimal().Text('f'))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return d, nil
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data, as float64 has a smaller precision
// than the magnitude.
// A finite magnitude beyond the range of float64 is returned as an
// infinity of the same sign, with ok set to false.
func (a Amount) Float64() (f float64, ok bool) {
	f, err := a.decimal().Float64()
	if err != nil {
		if a.Sign() < 0 {
			return math.Inf(-1), false
		}
		return math.Inf(1), false
	}
	return f, true
}

// WithMagnitude returns an amount in the same unit as a with the magnitude
// converted from v. Ratio amounts stay ratio amounts.
// See [NewAmount] for the list of supported types.
func (a Amount) WithMagnitude(v any) (Amount, error) {
	return NewAmount(a.unit, v)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.decimal().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.decimal().IsZero()
}

// IsInf returns true if the magnitude is positive or negative infinity.
// Infinite amounts are produced by division by zero.
func (a Amount) IsInf() bool {
	return a.decimal().Form == apd.Infinite
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.unit, new(apd.Decimal).Abs(a.decimal()))
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.unit, new(apd.Decimal).Neg(a.decimal()))
}

// SameUnit returns true if amounts are denominated in the same unit,
// that is if their symbols are identical.
func (a Amount) SameUnit(b Amount) bool {
	return a.unit == b.unit
}

// Equal returns true if amounts have numerically equal magnitudes and
// are denominated in the same unit.
// Amounts in different units are never equal, even if their magnitudes are.
// See also method [Amount.EqualValue].
func (a Amount) Equal(b Amount) bool {
	return a.SameUnit(b) && a.decimal().Cmp(b.decimal()) == 0
}

// FixedString returns the magnitude multiplied by 10^denom and truncated
// toward zero, written as an integer without exponent.
// For example, FixedString(Wei) of 5 DAI is "5000000000000000000".
//
// The absolute value of the result never exceeds the absolute value of the
// amount: a fraction of a sub-unit is always dropped, never rounded up.
// Infinite amounts are written as "Infinity" or "-Infinity".
func (a Amount) FixedString(denom Denom) string {
	d, err := shiftDecimal(a.decimal(), int(denom))
	if err != nil {
		// Out of exponent range, the amount cannot be shifted.
		return a.decimal().Text('f')
	}
	return fixedText(d, 0, truncContext)
}

// StringFixed returns the magnitude rounded half away from zero to the given
// number of digits after the decimal point, followed by a space and the symbol
// of the unit, for example "1000.545 MKR".
// Negative places are treated as 0.
// See also method [Amount.String].
func (a Amount) StringFixed(places int) string {
	return fixedText(a.decimal(), max(places, 0), displayContext) + " " + a.Symbol()
}

// String implements the [fmt.Stringer] interface and returns the amount
// with two digits after the decimal point, for example "4.60 MKR".
// See also methods [Amount.StringFixed], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.StringFixed(defaultPlaces)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description            |
//	| ------ | -------------- | ---------------------- |
//	| %s, %v | 5.68 USD/DAI   | Amount and unit        |
//	| %q     | "5.68 USD/DAI" | Quoted amount and unit |
//	| %f     | 5.68           | Amount                 |
//	| %d     | 5678000        | Amount in sub-units    |
//	| %c     | USD/DAI        | Unit                   |
//
// The '-' format flag can be used with all verbs.
//
// Precision sets the number of digits after the decimal point for %s, %v,
// %q and %f, with a default of 2. For %d precision sets the denomination
// and defaults to 0.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	// Rescaling
	places, ok := state.Precision()
	if !ok {
		switch verb {
		case 'd', 'D':
			places = 0
		default:
			places = defaultPlaces
		}
	}

	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = a.StringFixed(places)
	case 'q', 'Q':
		text = `"` + a.StringFixed(places) + `"`
	case 'f', 'F':
		text = fixedText(a.decimal(), places, displayContext)
	case 'd', 'D':
		text = a.FixedString(Denom(places))
	case 'c', 'C':
		text = a.Symbol()
	default:
		//nolint:errcheck
		io.WriteString(state, "%!"+string(verb)+"(units.Amount="+a.String()+")")
		return
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	//nolint:errcheck
	io.WriteString(state, text)
}
