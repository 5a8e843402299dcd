package units

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// NewRatioAmount returns a ratio amount denominated in "{num}/{den}".
// It is a shortcut for [NewRatioUnit] followed by [NewAmount].
func NewRatioAmount(num, den Unit, v any) (Amount, error) {
	u, err := NewRatioUnit(num, den)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(u, v)
}

// Inv returns the reciprocal of a ratio amount, so that 4 USD/DAI
// becomes 0.25 DAI/USD.
//
// Inv returns an error if the amount is not a ratio or is zero.
func (a Amount) Inv() (Amount, error) {
	u, err := a.unit.Inv()
	if err != nil {
		return Amount{}, err
	}
	if a.IsZero() {
		return Amount{}, fmt.Errorf("inverting %v: zero ratio does not have an inverse", a)
	}
	d, err := decQuo(apd.New(1, 0), a.decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("inverting %v: %w", a, err)
	}
	return newAmountUnsafe(u, d), nil
}

// CanConv returns true if [Amount.Conv] can convert amount b with ratio a,
// that is if a is a ratio and b is denominated in its numerator or denominator.
func (a Amount) CanConv(b Amount) bool {
	return a.IsRatio() && !b.IsRatio() &&
		(b.unit == a.unit.Num() || b.unit == a.unit.Den())
}

// Conv converts amount b to the other unit of ratio a.
// An amount in the denominator is multiplied by the ratio, and an amount
// in the numerator is divided by it: with a = 4 USD/DAI, 20 DAI converts
// to 80 USD and 20 USD converts to 5 DAI.
//
// Conv returns an error wrapping [ErrUnitMismatch] if [Amount.CanConv] is false.
func (a Amount) Conv(b Amount) (Amount, error) {
	switch {
	case !a.CanConv(b):
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, a, ErrUnitMismatch)
	case b.unit == a.unit.Den():
		return b.Mul(a)
	default:
		return b.Quo(a)
	}
}
