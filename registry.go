package units

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNotCurrency is returned by [Registry.Lookup] when no unit is given
	// for a value that is not an amount.
	ErrNotCurrency = errors.New("amount is not a currency")
	// ErrUnrecognizedUnit is returned by [Registry.Lookup] when a symbol
	// is not registered.
	ErrUnrecognizedUnit = errors.New("unrecognized unit")
)

// Registry resolves loosely typed amounts and unit specifiers to amounts.
// Symbols are matched case-insensitively.
//
// A registry cannot be modified after construction, so it is safe for
// concurrent use by multiple goroutines.
type Registry struct {
	currs map[string]Currency
}

// NewRegistry returns a registry of the given currencies.
// Pre-scaled currencies are registered as is, so a registry holding
// ETH.Wei() interprets every value looked up by symbol as wei.
//
// NewRegistry returns an error if two currencies share a symbol.
func NewRegistry(currs ...Currency) (*Registry, error) {
	r := &Registry{currs: make(map[string]Currency, len(currs))}
	for _, c := range currs {
		key := strings.ToUpper(c.Symbol())
		if _, ok := r.currs[key]; ok {
			return nil, fmt.Errorf("registering %v: duplicate symbol %q", c, key)
		}
		r.currs[key] = c
	}
	return r, nil
}

// MustNewRegistry is like [NewRegistry] but panics if two currencies share a symbol.
func MustNewRegistry(currs ...Currency) *Registry {
	r, err := NewRegistry(currs...)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry() failed: %v", err))
	}
	return r
}

// With returns a new registry holding the currencies of r and currs.
func (r *Registry) With(currs ...Currency) (*Registry, error) {
	return NewRegistry(append(r.Currencies(), currs...)...)
}

// Currencies returns the registered currencies sorted by symbol.
func (r *Registry) Currencies() []Currency {
	currs := make([]Currency, 0, len(r.currs))
	for _, c := range r.currs {
		currs = append(currs, c)
	}
	slices.SortFunc(currs, func(a, b Currency) int {
		return strings.Compare(a.Symbol(), b.Symbol())
	})
	return currs
}

// Contains returns true if a currency is registered under the given symbol.
// Unlike [Registry.Currency], it does not resolve unregistered ratios.
func (r *Registry) Contains(symbol string) bool {
	_, ok := r.currs[strings.ToUpper(symbol)]
	return ok
}

// Currency returns the currency registered under the given symbol.
// A ratio symbol such as "USD/DAI" that is not registered itself resolves
// to a ratio of its registered numerator and denominator.
func (r *Registry) Currency(symbol string) (Currency, error) {
	key := strings.ToUpper(symbol)
	if c, ok := r.currs[key]; ok {
		return c, nil
	}
	if num, den, ok := strings.Cut(key, "/"); ok {
		n, nok := r.currs[num]
		d, dok := r.currs[den]
		if nok && dok {
			return NewRatio(n, d)
		}
	}
	return Currency{}, fmt.Errorf("couldn't find currency for %q: %w", key, ErrUnrecognizedUnit)
}

// Lookup converts a loosely typed amount to an amount.
//
// An [Amount] is returned unchanged and unit is ignored.
// Otherwise unit determines the currency and must be one of:
//   - a symbol, such as "dai" or "USD/DAI";
//   - a [Unit];
//   - a [Currency], possibly pre-scaled, such as ETH.Wei().
//
// Lookup returns an error wrapping [ErrNotCurrency] if unit is nil,
// and an error wrapping [ErrUnrecognizedUnit] if its symbol is not registered.
func (r *Registry) Lookup(v any, unit any) (Amount, error) {
	if a, ok := v.(Amount); ok {
		return a, nil
	}
	var (
		curr Currency
		err  error
	)
	switch unit := unit.(type) {
	case nil:
		return Amount{}, fmt.Errorf("looking up %v: %w", v, ErrNotCurrency)
	case string:
		curr, err = r.Currency(unit)
	case Unit:
		curr, err = r.Currency(unit.Symbol())
	case Currency:
		curr, err = r.Currency(unit.Symbol())
		curr.shift = unit.Shift()
	default:
		return Amount{}, fmt.Errorf("looking up %v: %w: unsupported unit %T", v, ErrUnrecognizedUnit, unit)
	}
	if err != nil {
		return Amount{}, err
	}
	return curr.New(v)
}
