package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/amazonia/pkg/format"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(1234), "$\u00a01.234"},
		{decimal.Zero, "$\u00a00"},
		{decimal.NewFromInt(999), "$\u00a0999"},
		{decimal.NewFromInt(1000000), "$\u00a01.000.000"},
		{decimal.RequireFromString("2500.5"), "$\u00a02.501"},
		{decimal.NewFromInt(-5000), "-$\u00a05.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, format.FormatCOP(tc.in), "monto %s", tc.in)
	}
}

func TestFormatCOP_SinSeparadorDecimal(t *testing.T) {
	for _, n := range []int64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 98765432} {
		out := format.FormatCOP(decimal.NewFromInt(n))
		assert.NotContains(t, out, ",", "no debe tener separador decimal: %s", out)
		assert.Equal(t, "$\u00a0", out[:len("$\u00a0")])
	}
}

func TestSafeParseInt(t *testing.T) {
	assert.Equal(t, 42, format.SafeParseInt("42"))
	assert.Equal(t, 0, format.SafeParseInt("abc"))
	assert.Equal(t, 0, format.SafeParseInt(""))
	assert.Equal(t, 12, format.SafeParseInt("  12 unidades"))
	assert.Equal(t, -7, format.SafeParseInt("-7"))
	assert.Equal(t, 3, format.SafeParseInt("3.9"))
	assert.Equal(t, 0, format.SafeParseInt("-"))
}

func TestSafeParseDecimal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("12.5").Equal(format.SafeParseDecimal("12.5kg")))
	assert.True(t, decimal.RequireFromString("0.5").Equal(format.SafeParseDecimal(".5")))
	assert.True(t, decimal.NewFromInt(1500).Equal(format.SafeParseDecimal("1.5e3")))
	assert.True(t, decimal.NewFromInt(7).Equal(format.SafeParseDecimal("7e")))
	assert.True(t, decimal.Zero.Equal(format.SafeParseDecimal("precio")))
	assert.True(t, decimal.Zero.Equal(format.SafeParseDecimal("")))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "09/03/2024", format.FormatDate(time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "08/03/2024", format.FormatDate(time.Date(2024, 3, 9, 2, 0, 0, 0, time.UTC)), "medianoche en Bogotá")
}
