package units

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// quoPrecision is the number of significant digits kept by division.
const quoPrecision = 100

var (
	// exactContext never rounds; it is used for addition, subtraction
	// and multiplication.
	exactContext = apd.Context{
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
	quoContext = apd.Context{
		Precision:   quoPrecision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
	// Precision of the following contexts is set per call.
	truncContext = apd.Context{
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundDown,
	}
	displayContext = apd.Context{
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfUp,
	}
)

func decAdd(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := exactContext.Add(z, x, y); err != nil {
		return nil, err
	}
	return z, nil
}

func decSub(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := exactContext.Sub(z, x, y); err != nil {
		return nil, err
	}
	return z, nil
}

func decMul(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := exactContext.Mul(z, x, y); err != nil {
		return nil, err
	}
	return z, nil
}

// decQuo returns x / y.
// A non-zero dividend divided by zero is a signed infinity; 0 / 0 is an error.
func decQuo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		if x.IsZero() {
			return nil, fmt.Errorf("%w: 0 / 0 is not a number", ErrInvalidAmount)
		}
		return &apd.Decimal{Form: apd.Infinite, Negative: x.Negative != y.Negative}, nil
	}
	z := new(apd.Decimal)
	if _, err := quoContext.Quo(z, x, y); err != nil {
		return nil, err
	}
	// Trailing zeros
	z.Reduce(z)
	return z, nil
}

// decShift returns x * 10^y, where y must be an integer.
func decShift(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.Form != apd.Finite {
		return nil, fmt.Errorf("shifting by %v: exponent must be finite", y.Text('f'))
	}
	n, err := y.Int64()
	if err != nil {
		return nil, fmt.Errorf("shifting by %v: exponent must be an integer", y.Text('f'))
	}
	if n > apd.MaxExponent || n < apd.MinExponent {
		return nil, fmt.Errorf("shifting by %v: exponent out of range", n)
	}
	return shiftDecimal(x, int(n))
}

// shiftDecimal returns d * 10^shift by adjusting the exponent.
// The result may be d itself.
func shiftDecimal(d *apd.Decimal, shift int) (*apd.Decimal, error) {
	if shift == 0 || d.Form != apd.Finite {
		return d, nil
	}
	e := int64(d.Exponent) + int64(shift)
	if e > apd.MaxExponent || e < apd.MinExponent {
		return nil, fmt.Errorf("%w: exponent %v out of range", ErrInvalidAmount, e)
	}
	z := new(apd.Decimal).Set(d)
	z.Exponent = int32(e)
	return z, nil
}

// fixedText rounds d to the given number of digits after the decimal point
// using the rounding mode of ctx and returns it without exponent.
// Negative zero is written as zero.
func fixedText(d *apd.Decimal, places int, ctx apd.Context) string {
	if d.Form != apd.Finite {
		return d.Text('f')
	}
	// Integer digits + places + one digit for a carry.
	prec := max(d.NumDigits()+int64(d.Exponent), 1) + int64(places) + 1
	ctx.Precision = uint32(prec)
	var z apd.Decimal
	if _, err := ctx.Quantize(&z, d, int32(-places)); err != nil {
		return d.Text('f')
	}
	if z.IsZero() {
		z.Negative = false
	}
	return z.Text('f')
}
