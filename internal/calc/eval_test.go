package calc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/units"
)

func TestEvaluator_Eval(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"20 DAI", "20.00 DAI"},
		{"20 DAI * 4 USD/DAI", "80.00 USD"},
		{"20 dai times 4 usd/dai", "80.00 USD"},
		{"20 USD div 4 USD/DAI", "5.00 DAI"},
		{"4 USD / 20 DAI", "0.20 USD/DAI"},
		{"1 DAI + 2 DAI times 3", "9.00 DAI"},
		{"10 USD/DAI times 10", "100.00 USD/DAI"},
		{"2 ETH shift 3", "2000.00 ETH"},
		{"1500000000000000000 ETH.wei plus 1 ETH", "2.50 ETH"},
		{"1 DAI / 0", "Infinity DAI"},
		{"1 ETH * 150 USD/ETH / 1.5 USD/DAI", "100.00 DAI"},
	}
	e := NewEvaluator(units.DefaultRegistry, nil)
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.EvalString(tt.expr)
			require.NoError(t, err)
			assert.False(t, got.IsBool)
			assert.Equal(t, tt.want, got.Amount.String())
			assert.Equal(t, tt.expr, got.Expr)
		})
	}
}

func TestEvaluator_Eval_Comparison(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"1500000000000000000 ETH.wei gt 1 ETH", true},
		{"1 ETH lt 1 ETH", false},
		{"1 ETH <= 1 ETH", true},
		{"2 DAI + 2 DAI == 4", true},
		{"20 DAI * 4 USD/DAI isLessThan 80 USD", false},
	}
	e := NewEvaluator(units.DefaultRegistry, nil)
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.EvalString(tt.expr)
			require.NoError(t, err)
			assert.True(t, got.IsBool)
			assert.Equal(t, tt.want, got.Bool)
		})
	}
}

func TestEvaluator_Eval_Error(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr error
	}{
		{"", ErrSyntax},
		{"20", ErrSyntax},
		{"20 DAI *", ErrSyntax},
		{"20 DAI 4 DAI", ErrSyntax},
		{"abc DAI", ErrSyntax},
		{"abc DAI", units.ErrInvalidAmount},
		{"1 ETH.gwei", ErrSyntax},
		{"1 DAI lt 2 DAI + 1", ErrSyntax},
		{"20 DAI + 4 USD", units.ErrUnitMismatch},
		{"1 MKR plus 1 DAI", units.ErrUnitMismatch},
		{"20 FOO", units.ErrUnrecognizedUnit},
		{"20 DAI * 4 FOO/DAI", units.ErrUnrecognizedUnit},
		{"0 DAI / 0", units.ErrInvalidAmount},
	}
	e := NewEvaluator(units.DefaultRegistry, nil)
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := e.EvalString(tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluator_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Config{LogLevel: "debug", NoColor: true}.Logger(&buf)
	require.NoError(t, err)

	e := NewEvaluator(units.DefaultRegistry, logger)
	_, err = e.EvalString("1 DAI / 0")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "result is infinite")
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		s      string
		symbol string
		shift  int
	}{
		{"DAI", "DAI", 0},
		{"usd/dai", "USD/DAI", 0},
		{"ETH.wei", "ETH", -18},
		{"mkr.RAY", "MKR", -27},
		{"USD.2", "USD", -2},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseCurrency(units.DefaultRegistry, tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, got.Symbol())
			assert.Equal(t, tt.shift, got.Shift())
		})
	}

	_, err := ParseCurrency(units.DefaultRegistry, "ETH.gwei")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseCurrency(units.DefaultRegistry, "FOO")
	assert.ErrorIs(t, err, units.ErrUnrecognizedUnit)
}
