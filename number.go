package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a value cannot be converted to a decimal.
var ErrInvalidAmount = errors.New("invalid amount")

// Denom is the number of decimal places between a unit and one of its
// conventional sub-unit denominations.
type Denom int

// Conventional sub-unit denominations.
const (
	Wei Denom = 18
	Ray Denom = 27
	Rad Denom = 45
)

// ParseDenom converts a string to a denomination.
// The input string must be one of "wei", "ray", "rad" (case-insensitive),
// or a decimal integer.
func ParseDenom(s string) (Denom, error) {
	switch strings.ToLower(s) {
	case "wei":
		return Wei, nil
	case "ray":
		return Ray, nil
	case "rad":
		return Rad, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing denomination %q: %w", s, err)
	}
	return Denom(n), nil
}

// String returns the name of the denomination, or its number of places
// if it has no name.
func (d Denom) String() string {
	switch d {
	case Wei:
		return "wei"
	case Ray:
		return "ray"
	case Rad:
		return "rad"
	}
	return strconv.Itoa(int(d))
}

// Quantity is implemented by any value that can report an
// arbitrary-precision magnitude.
// The returned decimal must not be modified by the caller.
type Quantity interface {
	Magnitude() *apd.Decimal
}

// Operand is the right-hand side of an operation on an [Amount].
// It is implemented by [Amount] and [Number] only.
type Operand interface {
	Quantity
	decimal() *apd.Decimal
}

// Number type represents a raw, untagged decimal operand.
// Its zero value is 0.
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	value *apd.Decimal
}

// NewNumber converts v to a number.
// See [NewAmount] for the list of supported types.
func NewNumber(v any) (Number, error) {
	d, err := toDecimal(v)
	if err != nil {
		return Number{}, err
	}
	return Number{value: d}, nil
}

// MustNewNumber is like [NewNumber] but panics if v cannot be converted.
func MustNewNumber(v any) Number {
	n, err := NewNumber(v)
	if err != nil {
		panic(fmt.Sprintf("NewNumber(%v) failed: %v", v, err))
	}
	return n
}

// Int returns a number equal to n.
func Int(n int64) Number {
	return Number{value: apd.New(n, 0)}
}

func (n Number) decimal() *apd.Decimal {
	if n.value == nil {
		return new(apd.Decimal)
	}
	return n.value
}

// Magnitude returns a copy of the decimal value of the number.
func (n Number) Magnitude() *apd.Decimal {
	return new(apd.Decimal).Set(n.decimal())
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.decimal().Text('f')
}

// toDecimal converts a loosely typed value to a decimal that is never NaN.
// The result may share memory with v and must be treated as read-only.
func toDecimal(v any) (*apd.Decimal, error) {
	d, err := convert(v)
	if err != nil {
		return nil, err
	}
	if d.Form == apd.NaN || d.Form == apd.NaNSignaling {
		return nil, fmt.Errorf("amount %v is not a number: %w", v, ErrInvalidAmount)
	}
	return d, nil
}

//gocyclo:ignore
func convert(v any) (*apd.Decimal, error) {
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("converting nil: %w", ErrInvalidAmount)
	case Operand:
		return v.decimal(), nil
	case *apd.Decimal:
		if v == nil {
			return nil, fmt.Errorf("converting nil %T: %w", v, ErrInvalidAmount)
		}
		return new(apd.Decimal).Set(v), nil
	case apd.Decimal:
		return new(apd.Decimal).Set(&v), nil
	case Quantity:
		m := v.Magnitude()
		if m == nil {
			return nil, fmt.Errorf("converting %T: %w: nil magnitude", v, ErrInvalidAmount)
		}
		return new(apd.Decimal).Set(m), nil
	case int:
		return apd.New(int64(v), 0), nil
	case int8:
		return apd.New(int64(v), 0), nil
	case int16:
		return apd.New(int64(v), 0), nil
	case int32:
		return apd.New(int64(v), 0), nil
	case int64:
		return apd.New(v, 0), nil
	case uint:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return apd.New(int64(v), 0), nil
	case uint16:
		return apd.New(int64(v), 0), nil
	case uint32:
		return apd.New(int64(v), 0), nil
	case uint64:
		return parseDecimal(strconv.FormatUint(v, 10))
	case float32:
		return convertFloat(float64(v), 32)
	case float64:
		return convertFloat(v, 64)
	case string:
		return parseDecimal(v)
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("converting nil %T: %w", v, ErrInvalidAmount)
		}
		return parseDecimal(v.String())
	case decimal.Decimal:
		return parseDecimal(v.String())
	case shopspring.Decimal:
		return parseDecimal(v.String())
	}
	return nil, fmt.Errorf("converting %T: %w: unsupported type", v, ErrInvalidAmount)
}

func convertFloat(f float64, bits int) (*apd.Decimal, error) {
	switch {
	case math.IsNaN(f):
		return nil, fmt.Errorf("amount %v is not a number: %w", f, ErrInvalidAmount)
	case math.IsInf(f, 0):
		return &apd.Decimal{Form: apd.Infinite, Negative: f < 0}, nil
	}
	return parseDecimal(strconv.FormatFloat(f, 'g', -1, bits))
}

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("amount %q is not a number: %w", s, ErrInvalidAmount)
	}
	return d, nil
}
