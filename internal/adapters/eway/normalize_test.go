package eway

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "4444333322221111", "4444333322221111"},
		{"spaces", "4444 3333 2222 1111", "4444333322221111"},
		{"hyphens", "4444-3333-2222-1111", "4444333322221111"},
		{"mixed separators", "4444 3333-2222 1111", "4444333322221111"},
		{"encrypted value untouched", "eCrypted:AgABAxJk", "eCrypted:AgABAxJk"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCardNumber(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeCardNumber(got), "normalization is idempotent")
		})
	}
}

func TestNormalizeExpiryYear(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2030, "30"},
		{2005, "05"},
		{30, "30"},
		{5, "05"},
		{2000, "00"},
		{1999, "99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeExpiryYear(tt.year), "year %d", tt.year)
	}
}

func TestExpiryYearRoundTrip(t *testing.T) {
	// normalize and expand are inverses across the 2000s
	for year := 2000; year <= 2099; year++ {
		two := NormalizeExpiryYear(year)
		require.Len(t, two, 2)
		n, err := strconv.Atoi(two)
		require.NoError(t, err)
		assert.Equal(t, year, ExpandExpiryYear(n))
	}
}

func TestExpandExpiryYear(t *testing.T) {
	assert.Equal(t, 2030, ExpandExpiryYear(30))
	assert.Equal(t, 2000, ExpandExpiryYear(0))
	assert.Equal(t, 2099, ExpandExpiryYear(99))
	assert.Equal(t, 2030, ExpandExpiryYear(2030))
	assert.Equal(t, 1999, ExpandExpiryYear(1999))
}

func TestFormatExpiryMonth(t *testing.T) {
	assert.Equal(t, "01", FormatExpiryMonth(1))
	assert.Equal(t, "12", FormatExpiryMonth(12))
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "au", NormalizeCountry("AU"))
	assert.Equal(t, "au", NormalizeCountry(" au "))
	assert.Equal(t, "", NormalizeCountry("  "))
}

func TestAmountToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole dollars", decimal.NewFromFloat(100.00), "10000"},
		{"cents", decimal.NewFromFloat(1.05), "105"},
		{"sub-cent rounds", decimal.NewFromFloat(0.005), "1"},
		{"zero", decimal.Zero, "0"},
		{"large", decimal.RequireFromString("99999.99"), "9999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountToMinorUnits(tt.amount))
		})
	}
}
