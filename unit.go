package units

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// unknownSymbol is the symbol of the zero [Unit].
const unknownSymbol = "XXX"

// ErrInvalidUnit is returned when a unit symbol cannot be parsed.
var ErrInvalidUnit = errors.New("invalid unit")

// Unit type represents the unit an [Amount] is denominated in.
// A unit is either atomic, such as "ETH", or a ratio of two atomic units,
// such as "USD/DAI".
// The zero value is the atomic unit "XXX", which indicates an unknown unit.
//
// Units are comparable: two units are equal if and only if their symbols
// are identical strings.
type Unit struct {
	num string // atomic symbol, or numerator of a ratio
	den string // denominator of a ratio, empty for atomic units
}

// NewUnit returns an atomic unit with the given symbol.
// The symbol is case-sensitive.
//
// NewUnit returns an error if the symbol is empty, contains whitespace,
// or contains the ratio separator '/'.
func NewUnit(symbol string) (Unit, error) {
	if err := validSymbol(symbol); err != nil {
		return Unit{}, fmt.Errorf("parsing unit %q: %w", symbol, err)
	}
	if symbol == unknownSymbol {
		return Unit{}, nil
	}
	return Unit{num: symbol}, nil
}

// MustNewUnit is like [NewUnit] but panics if the symbol is not valid.
// It simplifies safe initialization of global variables holding units.
func MustNewUnit(symbol string) Unit {
	u, err := NewUnit(symbol)
	if err != nil {
		panic(fmt.Sprintf("NewUnit(%q) failed: %v", symbol, err))
	}
	return u
}

// NewRatioUnit returns a unit representing the quotient num / den.
// The symbol of the result is always "{num}/{den}".
//
// NewRatioUnit returns an error if either unit is itself a ratio.
func NewRatioUnit(num, den Unit) (Unit, error) {
	if num.IsRatio() || den.IsRatio() {
		return Unit{}, fmt.Errorf("ratio of %v and %v: %w: nested ratios are not supported", num, den, ErrInvalidUnit)
	}
	return Unit{num: num.num, den: den.Symbol()}, nil
}

// MustNewRatioUnit is like [NewRatioUnit] but panics if the ratio cannot be constructed.
func MustNewRatioUnit(num, den Unit) Unit {
	u, err := NewRatioUnit(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatioUnit(%v, %v) failed: %v", num, den, err))
	}
	return u
}

// ParseUnit converts a string to a unit.
// The input string must be in one of the following formats:
//
//	ETH
//	USD/DAI
func ParseUnit(s string) (Unit, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return NewUnit(s)
	}
	n, err := NewUnit(num)
	if err != nil {
		return Unit{}, err
	}
	d, err := NewUnit(den)
	if err != nil {
		return Unit{}, err
	}
	return NewRatioUnit(n, d)
}

func validSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidUnit)
	}
	for _, r := range symbol {
		switch {
		case r == '/':
			return fmt.Errorf("%w: unexpected '/'", ErrInvalidUnit)
		case unicode.IsSpace(r), !unicode.IsPrint(r):
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidUnit, r)
		}
	}
	return nil
}

// Symbol returns the symbol of the unit, for example "ETH" or "USD/DAI".
func (u Unit) Symbol() string {
	num := u.num
	if num == "" {
		num = unknownSymbol
	}
	if u.den == "" {
		return num
	}
	return num + "/" + u.den
}

// String implements the [fmt.Stringer] interface and returns the symbol of the unit.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Symbol()
}

// IsRatio returns true if the unit is a quotient of two atomic units.
func (u Unit) IsRatio() bool {
	return u.den != ""
}

// Num returns the numerator of a ratio unit.
// For an atomic unit Num returns the unit itself.
func (u Unit) Num() Unit {
	return Unit{num: u.num}
}

// Den returns the denominator of a ratio unit.
// For an atomic unit Den returns the zero unit "XXX".
func (u Unit) Den() Unit {
	if u.den == unknownSymbol {
		return Unit{}
	}
	return Unit{num: u.den}
}

// Inv returns the reciprocal of a ratio unit, so that "USD/DAI" becomes "DAI/USD".
// Inv returns an error for atomic units.
func (u Unit) Inv() (Unit, error) {
	if !u.IsRatio() {
		return Unit{}, fmt.Errorf("inverting %v: %w: not a ratio", u, ErrInvalidUnit)
	}
	return NewRatioUnit(u.Den(), u.Num())
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unit{}, err)
	}
	return nil
}
