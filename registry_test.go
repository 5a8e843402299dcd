package units

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, err := NewRegistry(DAI, USD, USDDAI)
		if err != nil {
			t.Fatalf("NewRegistry(DAI, USD, USDDAI) failed: %v", err)
		}
		got := r.Currencies()
		want := []Currency{DAI, USD, USDDAI}
		if !slices.Equal(got, want) {
			t.Errorf("Currencies() = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]Currency{
			"same currency": {DAI, DAI},
			"pre-scaled":    {DAI, DAI.Wei()},
			"case":          {MustNewCurrency("foo"), MustNewCurrency("FOO")},
			"same ratio":    {USDDAI, MustNewRatio(USD, DAI)},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewRegistry(tt...)
				if err == nil {
					t.Errorf("NewRegistry(%v) did not fail", tt)
				}
			})
		}
	})
}

func TestMustNewRegistry(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewRegistry(DAI, DAI) did not panic")
			}
		}()
		MustNewRegistry(DAI, DAI)
	})
}

func TestRegistry_With(t *testing.T) {
	foo := MustNewCurrency("FOO")
	r, err := DefaultRegistry.With(foo)
	if err != nil {
		t.Fatalf("DefaultRegistry.With(FOO) failed: %v", err)
	}
	if _, err := r.Currency("FOO"); err != nil {
		t.Errorf("Currency(\"FOO\") failed: %v", err)
	}
	if _, err := DefaultRegistry.Currency("FOO"); err == nil {
		t.Errorf("DefaultRegistry.With(FOO) modified DefaultRegistry")
	}
	if _, err := r.With(DAI); err == nil {
		t.Errorf("With(DAI) did not fail")
	}
}

func TestRegistry_Currencies(t *testing.T) {
	got := make([]string, 0)
	for _, c := range DefaultRegistry.Currencies() {
		got = append(got, c.Symbol())
	}
	want := []string{
		"BAT", "DAI", "ETH", "MKR", "PETH", "SAI", "USD",
		"USD/DAI", "USD/ETH", "USD/MKR", "USD/PETH",
		"USDC", "WBTC", "WETH",
	}
	if !slices.Equal(got, want) {
		t.Errorf("DefaultRegistry.Currencies() = %v, want %v", got, want)
	}
}

func TestRegistry_Currency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			symbol string
			want   Currency
		}{
			{"DAI", DAI},
			{"dai", DAI},
			{"Usd", USD},
			{"USD/DAI", USDDAI},
			{"usd/dai", USDDAI},
			{"ETH/DAI", MustNewRatio(ETH, DAI)},
			{"dai/usd", MustNewRatio(DAI, USD)},
		}
		for _, tt := range tests {
			got, err := DefaultRegistry.Currency(tt.symbol)
			if err != nil {
				t.Errorf("Currency(%q) failed: %v", tt.symbol, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Currency(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "FOO", "XXX", "FOO/DAI", "DAI/FOO", "USD/DAI/ETH"}
		for _, tt := range tests {
			_, err := DefaultRegistry.Currency(tt)
			if !errors.Is(err, ErrUnrecognizedUnit) {
				t.Errorf("Currency(%q) failed with %v, want %v", tt, err, ErrUnrecognizedUnit)
			}
		}
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    any
			unit any
			want Amount
		}{
			// Amounts pass through
			{DAI.MustNew(1), nil, DAI.MustNew(1)},
			{DAI.MustNew(1), "USD", DAI.MustNew(1)},
			{USDDAI.MustNew(4), 42, USDDAI.MustNew(4)},

			// Symbols
			{1, "DAI", DAI.MustNew(1)},
			{"1.5", "dai", DAI.MustNew("1.5")},
			{2.5, "Mkr", MKR.MustNew("2.5")},
			{"0.2", "USD/DAI", USDDAI.MustNew("0.2")},
			{"0.2", "usd/dai", USDDAI.MustNew("0.2")},
			{"0.5", "DAI/USD", MustNewRatio(DAI, USD).MustNew("0.5")},

			// Units
			{1, ETH.Unit(), ETH.MustNew(1)},
			{1, USDDAI.Unit(), USDDAI.MustNew(1)},

			// Currencies
			{1, DAI, DAI.MustNew(1)},
			{"1000000000000000000", ETH.Wei(), ETH.MustNew(1)},
			{"1" + strings.Repeat("0", 27), MKR.Ray(), MKR.MustNew(1)},
			{"1" + strings.Repeat("0", 45), USDDAI.Rad(), USDDAI.MustNew(1)},
		}
		for _, tt := range tests {
			got, err := DefaultRegistry.Lookup(tt.v, tt.unit)
			if err != nil {
				t.Errorf("Lookup(%v, %v) failed: %v", tt.v, tt.unit, err)
				continue
			}
			if !got.Equal(tt.want) {
				t.Errorf("Lookup(%v, %v) = %q, want %q", tt.v, tt.unit, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			v       any
			unit    any
			wantErr error
		}{
			"no unit":          {1, nil, ErrNotCurrency},
			"no unit string":   {"1", nil, ErrNotCurrency},
			"unknown symbol":   {1, "FOO", ErrUnrecognizedUnit},
			"unknown ratio":    {1, "FOO/DAI", ErrUnrecognizedUnit},
			"unknown unit":     {1, MustNewUnit("FOO"), ErrUnrecognizedUnit},
			"unknown currency": {1, MustNewCurrency("FOO"), ErrUnrecognizedUnit},
			"zero unit":        {1, Unit{}, ErrUnrecognizedUnit},
			"unsupported unit": {1, 42, ErrUnrecognizedUnit},
			"not a number":     {"abc", "DAI", ErrInvalidAmount},
			"nil amount":       {nil, "DAI", ErrInvalidAmount},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := DefaultRegistry.Lookup(tt.v, tt.unit)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Lookup(%v, %v) failed with %v, want %v", tt.v, tt.unit, err, tt.wantErr)
				}
			})
		}
	})
}

func TestRegistry_Lookup_ErrorMessage(t *testing.T) {
	tests := []struct {
		unit any
		want string
	}{
		{"foo", `couldn't find currency for "FOO"`},
		{nil, "amount is not a currency"},
	}
	for _, tt := range tests {
		_, err := DefaultRegistry.Lookup(1, tt.unit)
		if err == nil {
			t.Errorf("Lookup(1, %v) did not fail", tt.unit)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Lookup(1, %v) failed with %q, want %q", tt.unit, err, tt.want)
		}
	}
}

func TestRegistry_PreScaled(t *testing.T) {
	r := MustNewRegistry(ETH.Wei(), USD)
	tests := []struct {
		v    any
		unit any
		want Amount
	}{
		{"1000000000000000000", "eth", ETH.MustNew(1)},
		{"1", "ETH", ETH.Wei().MustNew(1)},
		{"1", ETH, ETH.MustNew(1)},
		{"1", "USD", USD.MustNew(1)},
		{"1", "USD/ETH", USDETH.MustNew(1)},
	}
	for _, tt := range tests {
		got, err := r.Lookup(tt.v, tt.unit)
		if err != nil {
			t.Errorf("Lookup(%v, %v) failed: %v", tt.v, tt.unit, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Lookup(%v, %v) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}

func TestRegistry_Contains(t *testing.T) {
	tests := []struct {
		symbol string
		want   bool
	}{
		{"DAI", true},
		{"dai", true},
		{"USD/DAI", true},
		{"ETH/DAI", false},
		{"FOO", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := DefaultRegistry.Contains(tt.symbol); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}
