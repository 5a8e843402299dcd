package units

import (
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type is a factory of amounts denominated in a single [Unit].
// A currency may be pre-scaled: the currency returned by [Currency.Wei]
// interprets its input as a number of wei and divides it by 10^18.
//
// The zero value creates amounts in the unknown unit XXX.
// Currency is designed to be safe for concurrent use by multiple goroutines.
type Currency struct {
	unit  Unit
	shift int // power of ten applied to every input
}

// NewCurrency returns a factory of amounts denominated in the atomic unit
// with the given symbol.
// See also constructor [NewUnit].
func NewCurrency(symbol string) (Currency, error) {
	u, err := NewUnit(symbol)
	if err != nil {
		return Currency{}, err
	}
	return Currency{unit: u}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the symbol is not valid.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(symbol string) Currency {
	c, err := NewCurrency(symbol)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q) failed: %v", symbol, err))
	}
	return c
}

// NewRatio returns a factory of ratio amounts denominated in "{num}/{den}",
// for example NewRatio(USD, DAI) creates amounts in "USD/DAI".
// Pre-scaling of num and den is ignored.
func NewRatio(num, den Currency) (Currency, error) {
	u, err := NewRatioUnit(num.Unit(), den.Unit())
	if err != nil {
		return Currency{}, err
	}
	return Currency{unit: u}, nil
}

// MustNewRatio is like [NewRatio] but panics if the ratio cannot be constructed.
func MustNewRatio(num, den Currency) Currency {
	c, err := NewRatio(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatio(%v, %v) failed: %v", num, den, err))
	}
	return c
}

// New converts v to an amount in the unit of the currency.
// If the currency is pre-scaled, v is multiplied by 10^[Currency.Shift].
// See [NewAmount] for the list of supported types.
func (c Currency) New(v any) (Amount, error) {
	return NewAmountShifted(c.unit, v, c.shift)
}

// MustNew is like [Currency.New] but panics if the amount cannot be constructed.
func (c Currency) MustNew(v any) Amount {
	a, err := c.New(v)
	if err != nil {
		panic(fmt.Sprintf("%v.New(%v) failed: %v", c, v, err))
	}
	return a
}

// NewShifted returns an amount equal to v * 10^shift in the unit of the currency.
// The shift adds up with the shift of a pre-scaled currency.
// For example, ETH.NewShifted(100, -2) returns 1 ETH.
func (c Currency) NewShifted(v any, shift int) (Amount, error) {
	return NewAmountShifted(c.unit, v, c.shift+shift)
}

// WithDenom returns a pre-scaled currency that interprets its input as
// a number of sub-units of the given denomination.
func (c Currency) WithDenom(d Denom) Currency {
	return Currency{unit: c.unit, shift: -int(d)}
}

// Wei returns a pre-scaled currency whose input is in units of 10^-18.
func (c Currency) Wei() Currency {
	return c.WithDenom(Wei)
}

// Ray returns a pre-scaled currency whose input is in units of 10^-27.
func (c Currency) Ray() Currency {
	return c.WithDenom(Ray)
}

// Rad returns a pre-scaled currency whose input is in units of 10^-45.
func (c Currency) Rad() Currency {
	return c.WithDenom(Rad)
}

// Is returns true if the amount is denominated in the unit of the currency.
// Pre-scaling is ignored.
func (c Currency) Is(a Amount) bool {
	return a.Unit() == c.unit
}

// Unit returns the unit of the amounts created by the currency.
func (c Currency) Unit() Unit {
	return c.unit
}

// Symbol returns the symbol of the unit of the currency.
func (c Currency) Symbol() string {
	return c.unit.Symbol()
}

// Shift returns the power of ten applied to every input.
// It is 0 for currencies that are not pre-scaled, and -18 for [Currency.Wei].
func (c Currency) Shift() int {
	return c.shift
}

// String implements the [fmt.Stringer] interface and returns the symbol of
// the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Symbol()
}
