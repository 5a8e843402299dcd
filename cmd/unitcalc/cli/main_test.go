package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/calc"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Main()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "20", "DAI", "*", "4", "USD/DAI"}, "80.00 USD\n"},
		{[]string{"eval", "20 DAI times 4 USD/DAI"}, "80.00 USD\n"},
		{[]string{"eval", "--places", "4", "4", "USD", "/", "20", "DAI"}, "0.2000 USD/DAI\n"},
		{[]string{"eval", "1", "ETH", "lt", "2", "ETH"}, "true\n"},
		{[]string{"eval", "1000.5447123", "MKR", "--places=3"}, "1000.545 MKR\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEval_JSON(t *testing.T) {
	out, err := execute(t, "eval", "-o", "json", "4 USD / 20 DAI")
	require.NoError(t, err)

	var got calc.Report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "0.20 USD/DAI", got.Amount)
	assert.Equal(t, "0.2", got.Magnitude)
	assert.Equal(t, "USD/DAI", got.Unit)
	assert.True(t, got.Ratio)
}

func TestEval_Error(t *testing.T) {
	_, err := execute(t, "eval", "1 MKR plus 1 DAI")
	assert.ErrorIs(t, err, units.ErrUnitMismatch)

	_, err = execute(t, "eval", "1 FOO")
	assert.ErrorIs(t, err, units.ErrUnrecognizedUnit)

	_, err = execute(t, "eval")
	assert.Error(t, err)
}

func TestEval_Env(t *testing.T) {
	t.Setenv("UNITCALC_CURRENCIES", "FOO")
	t.Setenv("UNITCALC_PLACES", "1")
	got, err := execute(t, "eval", "1 foo + 0.25 FOO")
	require.NoError(t, err)
	assert.Equal(t, "1.3 FOO\n", got)
}

func TestFixed(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"fixed", "1.5", "DAI"}, "1500000000000000000\n"},
		{[]string{"fixed", "5", "dai", "--denom", "wei"}, "5000000000000000000\n"},
		{[]string{"fixed", "0.25", "MKR", "-d", "ray"}, "25" + strings.Repeat("0", 25) + "\n"},
		{[]string{"fixed", "1.999", "USD", "--denom", "2"}, "199\n"},
		{[]string{"fixed", "1500000000000000000", "ETH.wei", "--denom", "6"}, "1500000\n"},
		{[]string{"fixed", "2", "eth.ray"}, "0\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := execute(t, "fixed", "1", "DAI", "--denom", "gwei")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(units.DefaultRegistry.Currencies()))
	assert.Contains(t, lines, "USD/DAI")
	assert.Contains(t, lines, "ETH")
}

func TestOps(t *testing.T) {
	out, err := execute(t, "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "add: plus +\n")
	assert.Contains(t, out, "divide: div dividedBy quo /\n")

	out, err = execute(t, "ops", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: scaleByPowerOfTen")
}
