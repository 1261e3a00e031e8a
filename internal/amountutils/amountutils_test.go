package amountutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "1234.50", expected: "1234.50"},
		{name: "thousands separator", input: "1,234.50", expected: "1234.50"},
		{name: "indian grouping", input: "1,23,456.78", expected: "123456.78"},
		{name: "parenthesized negative", input: "(500.00)", expected: "-500.00"},
		{name: "currency symbol", input: "₹1,500.00", expected: "1500.00"},
		{name: "currency code", input: "INR 2500", expected: "2500"},
		{name: "apostrophe separator", input: "1'234.50", expected: "1234.50"},
		{name: "leading minus kept", input: "-42.00", expected: "-42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Standardize(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "grouped", input: "1,234.50", expected: "1234.5"},
		{name: "parenthesized", input: "(500.00)", expected: "-500"},
		{name: "empty is zero", input: "", expected: "0"},
		{name: "whitespace is zero", input: "   ", expected: "0"},
		{name: "bare dash is zero", input: "-", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("12.34.56")
	assert.Error(t, err)
}

func TestParseLenient(t *testing.T) {
	assert.True(t, ParseLenient("12.34.56").IsZero())
	assert.True(t, ParseLenient("--").IsZero())
	assert.Equal(t, "1234.5", ParseLenient("1,234.50").String())
}
