package units

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrMissingOperand is returned when an operation has no right operand.
	ErrMissingOperand = errors.New("missing operand")
	// ErrUnitMismatch is returned when the units of the operands cannot be combined.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrInvalidOp is returned when an operation name is not recognized.
	ErrInvalidOp = errors.New("invalid operation")
)

// Op identifies an arithmetic or comparison operation on amounts.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpQuo
	OpShift
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpEqual
)

type opInfo struct {
	name     string
	synonyms []string
	arith    func(x, y *apd.Decimal) (*apd.Decimal, error) // nil for comparisons
	test     func(cmp int) bool                            // nil for arithmetic
}

var opTable = [...]opInfo{
	OpAdd: {
		name:     "add",
		synonyms: []string{"plus", "+"},
		arith:    decAdd,
	},
	OpSub: {
		name:     "subtract",
		synonyms: []string{"sub", "minus", "-"},
		arith:    decSub,
	},
	OpMul: {
		name:     "multiply",
		synonyms: []string{"mul", "times", "multipliedBy", "*"},
		arith:    decMul,
	},
	OpQuo: {
		name:     "divide",
		synonyms: []string{"div", "dividedBy", "quo", "/"},
		arith:    decQuo,
	},
	OpShift: {
		name:     "scaleByPowerOfTen",
		synonyms: []string{"shiftedBy", "shift"},
		arith:    decShift,
	},
	OpLess: {
		name:     "lessThan",
		synonyms: []string{"lt", "isLessThan", "<"},
		test:     func(c int) bool { return c < 0 },
	},
	OpLessOrEqual: {
		name:     "lessOrEqual",
		synonyms: []string{"lte", "isLessThanOrEqualTo", "<="},
		test:     func(c int) bool { return c <= 0 },
	},
	OpGreater: {
		name:     "greaterThan",
		synonyms: []string{"gt", "isGreaterThan", ">"},
		test:     func(c int) bool { return c > 0 },
	},
	OpGreaterOrEqual: {
		name:     "greaterOrEqual",
		synonyms: []string{"gte", "isGreaterThanOrEqualTo", ">="},
		test:     func(c int) bool { return c >= 0 },
	},
	OpEqual: {
		name:     "equalValue",
		synonyms: []string{"eq", "=="},
		test:     func(c int) bool { return c == 0 },
	},
}

var opLookup = func() map[string]Op {
	m := make(map[string]Op)
	for op, info := range opTable {
		m[info.name] = Op(op)
		for _, s := range info.synonyms {
			m[s] = Op(op)
		}
	}
	return m
}()

// ParseOp converts an operation name or one of its synonyms to an operation.
// For example, "add", "plus" and "+" all return [OpAdd].
func ParseOp(name string) (Op, error) {
	op, ok := opLookup[name]
	if !ok {
		return 0, fmt.Errorf("parsing %q: %w", name, ErrInvalidOp)
	}
	return op, nil
}

// Ops returns all operations in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opTable))
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// String returns the canonical name of the operation.
func (op Op) String() string {
	if int(op) >= len(opTable) {
		return fmt.Sprintf("Op(%d)", op)
	}
	return opTable[op].name
}

// Synonyms returns the alternative names accepted by [ParseOp].
func (op Op) Synonyms() []string {
	if int(op) >= len(opTable) {
		return nil
	}
	return append([]string(nil), opTable[op].synonyms...)
}

// IsComparison returns true if the operation yields a boolean.
func (op Op) IsComparison() bool {
	return int(op) < len(opTable) && opTable[op].test != nil
}

// validate decides whether op may combine a with b.
//
// A raw number or an amount in the same unit can always be combined.
// An amount can be multiplied by a ratio whose denominator is its unit,
// and divided by a ratio whose numerator is its unit.
// Two simple amounts in different units can only be divided.
func validate(op Op, a Amount, b Operand) error {
	if b == nil {
		return fmt.Errorf("invalid operation: %v %v with no right operand: %w", a.unit, op, ErrMissingOperand)
	}
	c, ok := b.(Amount)
	if !ok || a.SameUnit(c) {
		return nil
	}
	switch {
	case a.IsRatio():
		// Ratio amounts only combine with raw numbers and amounts in the same unit.
	case c.IsRatio():
		switch {
		case op == OpMul && a.unit == c.unit.Den():
			return nil
		case op == OpQuo && a.unit == c.unit.Num():
			return nil
		}
	case op == OpQuo:
		return nil
	}
	return fmt.Errorf("invalid operation: %v %v %v: %w", a.unit, op, c.unit, ErrUnitMismatch)
}

// resultUnit returns the unit of the result of a successful arithmetic op.
func resultUnit(op Op, a Amount, b Operand) Unit {
	c, ok := b.(Amount)
	switch {
	case ok && c.IsRatio() && op == OpMul:
		return c.unit.Num()
	case ok && c.IsRatio() && op == OpQuo:
		return c.unit.Den()
	case !ok || a.SameUnit(c):
		return a.unit
	}
	// Validation only lets two different simple units through for division.
	return Unit{num: a.unit.num, den: c.unit.Symbol()}
}

func (a Amount) apply(op Op, b Operand) (Amount, error) {
	if op.IsComparison() || int(op) >= len(opTable) {
		return Amount{}, fmt.Errorf("%v is not an arithmetic operation: %w", op, ErrInvalidOp)
	}
	if err := validate(op, a, b); err != nil {
		return Amount{}, err
	}
	d, err := opTable[op].arith(a.decimal(), b.decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v %v %v]: %w", a, op, b, err)
	}
	if d.Form == apd.NaN || d.Form == apd.NaNSignaling {
		return Amount{}, fmt.Errorf("computing [%v %v %v]: %w: result is not a number", a, op, b, ErrInvalidAmount)
	}
	return newAmountUnsafe(resultUnit(op, a, b), d), nil
}

func (a Amount) test(op Op, b Operand) (bool, error) {
	if !op.IsComparison() {
		return false, fmt.Errorf("%v is not a comparison: %w", op, ErrInvalidOp)
	}
	if err := validate(op, a, b); err != nil {
		return false, err
	}
	return opTable[op].test(a.decimal().Cmp(b.decimal())), nil
}

// Apply performs the arithmetic operation with the given name or synonym,
// for example "plus", "times" or "/".
// See [ParseOp] for the accepted names.
func (a Amount) Apply(name string, b Operand) (Amount, error) {
	op, err := ParseOp(name)
	if err != nil {
		return Amount{}, err
	}
	return a.apply(op, b)
}

// Is performs the comparison with the given name or synonym,
// for example "lt", "isGreaterThanOrEqualTo" or "==".
// See [ParseOp] for the accepted names.
func (a Amount) Is(name string, b Operand) (bool, error) {
	op, err := ParseOp(name)
	if err != nil {
		return false, err
	}
	return a.test(op, b)
}

// Add returns the sum of a and b.
// b must be a [Number] or an amount in the same unit as a.
func (a Amount) Add(b Operand) (Amount, error) {
	return a.apply(OpAdd, b)
}

// Sub returns the difference between a and b.
// b must be a [Number] or an amount in the same unit as a.
func (a Amount) Sub(b Operand) (Amount, error) {
	return a.apply(OpSub, b)
}

// Mul returns the product of a and b.
//
// The unit of the result is:
//   - the numerator of b, if b is a ratio whose denominator is the unit of a,
//     so that 20 DAI * 4 USD/DAI = 80 USD;
//   - the unit of a, if b is a [Number] or an amount in the same unit as a.
//
// Mul returns an error wrapping [ErrUnitMismatch] in all other cases.
func (a Amount) Mul(b Operand) (Amount, error) {
	return a.apply(OpMul, b)
}

// Quo returns the quotient of a and b.
// The quotient of a non-zero amount and zero is an infinite amount.
//
// The unit of the result is:
//   - the denominator of b, if b is a ratio whose numerator is the unit of a,
//     so that 20 USD / 4 USD/DAI = 5 DAI;
//   - the unit of a, if b is a [Number] or an amount in the same unit as a;
//   - the ratio of the units of a and b, if both are simple amounts,
//     so that 4 USD / 20 DAI = 0.2 USD/DAI.
//
// A ratio amount can only be divided by a [Number] or by an amount in the
// same ratio unit.
func (a Amount) Quo(b Operand) (Amount, error) {
	return a.apply(OpQuo, b)
}

// Shift returns a * 10^n.
func (a Amount) Shift(n int) (Amount, error) {
	return a.apply(OpShift, Int(int64(n)))
}

// Less returns true if a < b.
func (a Amount) Less(b Operand) (bool, error) {
	return a.test(OpLess, b)
}

// LessOrEqual returns true if a <= b.
func (a Amount) LessOrEqual(b Operand) (bool, error) {
	return a.test(OpLessOrEqual, b)
}

// Greater returns true if a > b.
func (a Amount) Greater(b Operand) (bool, error) {
	return a.test(OpGreater, b)
}

// GreaterOrEqual returns true if a >= b.
func (a Amount) GreaterOrEqual(b Operand) (bool, error) {
	return a.test(OpGreaterOrEqual, b)
}

// EqualValue returns true if the magnitudes of a and b are equal.
// Unlike [Amount.Equal], it compares an amount with a raw [Number] and
// returns an error for amounts in different units.
func (a Amount) EqualValue(b Operand) (bool, error) {
	return a.test(OpEqual, b)
}
