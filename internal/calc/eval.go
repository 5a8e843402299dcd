package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/govalues/units"
)

// ErrSyntax is returned when an expression cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// Result is the outcome of an expression: an amount, or a boolean if the
// expression ends with a comparison.
type Result struct {
	Expr   string
	Amount units.Amount
	IsBool bool
	Bool   bool
}

// Evaluator evaluates expressions of the form
//
//	operand { op operand }
//
// strictly from left to right, without operator precedence.
// An operand is a number optionally followed by a unit specifier, such as
// "20 DAI", "4 USD/DAI", "1500000000000000000 ETH.wei" or "10".
// The first operand must have a unit.
// An op is any name accepted by [units.ParseOp], such as "+", "times" or "lt".
// A comparison must be the last operation of an expression.
type Evaluator struct {
	reg    *units.Registry
	logger *slog.Logger
}

// NewEvaluator returns an evaluator resolving unit specifiers with reg.
// A nil logger discards all records.
func NewEvaluator(reg *units.Registry, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{reg: reg, logger: logger}
}

// EvalString splits expr into whitespace-separated tokens and evaluates them.
func (e *Evaluator) EvalString(expr string) (Result, error) {
	return e.Eval(strings.Fields(expr))
}

// Eval evaluates an expression given as tokens.
func (e *Evaluator) Eval(tokens []string) (Result, error) {
	res := Result{Expr: strings.Join(tokens, " ")}
	if len(tokens) == 0 {
		return Result{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	left, next, err := e.operand(tokens, 0)
	if err != nil {
		return Result{}, err
	}
	a, ok := left.(units.Amount)
	if !ok {
		return Result{}, fmt.Errorf("%w: first operand %v has no unit", ErrSyntax, left)
	}
	e.logger.Debug("parsed operand", "amount", a)

	for next < len(tokens) {
		if res.IsBool {
			return Result{}, fmt.Errorf("%w: unexpected %q after comparison", ErrSyntax, tokens[next])
		}
		op, err := units.ParseOp(tokens[next])
		if err != nil {
			return Result{}, fmt.Errorf("%w: expected operation at %q", ErrSyntax, tokens[next])
		}
		b, after, err := e.operand(tokens, next+1)
		if err != nil {
			return Result{}, err
		}
		next = after

		if op.IsComparison() {
			res.Bool, err = a.Is(op.String(), b)
			if err != nil {
				return Result{}, err
			}
			res.IsBool = true
			e.logger.Debug("compared", "left", a, "op", op, "right", b, "result", res.Bool)
			continue
		}
		c, err := a.Apply(op.String(), b)
		if err != nil {
			return Result{}, err
		}
		e.logger.Debug("applied", "left", a, "op", op, "right", b, "result", c)
		if c.IsInf() {
			e.logger.Warn("result is infinite", "expr", res.Expr)
		}
		a = c
	}

	res.Amount = a
	return res, nil
}

// operand parses the operand starting at tokens[i] and returns it together
// with the index of the following token.
func (e *Evaluator) operand(tokens []string, i int) (units.Operand, int, error) {
	if i >= len(tokens) {
		return nil, i, fmt.Errorf("%w: missing operand at end of expression", ErrSyntax)
	}
	n, err := units.NewNumber(tokens[i])
	if err != nil {
		return nil, i, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if i+1 >= len(tokens) || isOp(tokens[i+1]) {
		return n, i + 1, nil
	}
	curr, err := ParseCurrency(e.reg, tokens[i+1])
	if err != nil {
		return nil, i, err
	}
	a, err := e.reg.Lookup(n, curr)
	if err != nil {
		return nil, i, err
	}
	return a, i + 2, nil
}

// ParseCurrency resolves a unit specifier with an optional denomination
// suffix, such as "DAI", "usd/dai" or "ETH.wei", with reg.
func ParseCurrency(reg *units.Registry, s string) (units.Currency, error) {
	symbol, denom, ok := strings.Cut(s, ".")
	curr, err := reg.Currency(symbol)
	if err != nil {
		return units.Currency{}, err
	}
	if ok {
		d, err := units.ParseDenom(denom)
		if err != nil {
			return units.Currency{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		curr = curr.WithDenom(d)
	}
	return curr, nil
}

func isOp(s string) bool {
	_, err := units.ParseOp(s)
	return err == nil
}
