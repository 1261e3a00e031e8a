package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSerial(t *testing.T) {
	tests := []struct {
		name     string
		serial   float64
		expected string
	}{
		{name: "epoch", serial: 0, expected: "1899-12-30"},
		{name: "first day", serial: 1, expected: "1899-12-31"},
		{name: "modern date", serial: 45000, expected: "2023-03-15"},
		{name: "fraction dropped", serial: 45000.75, expected: "2023-03-15"},
		{name: "known anchor", serial: 25569, expected: "1970-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToISODate(FromSerial(tt.serial)))
		})
	}
}

func TestSerialPlausible(t *testing.T) {
	assert.True(t, SerialPlausible(45000))
	assert.True(t, SerialPlausible(25569))

	// A misread account number converts to an absurd year.
	assert.False(t, SerialPlausible(99999999))
	assert.False(t, SerialPlausible(-3000000))
}

func TestParseDayFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "four digit year", input: "05/03/2024", expected: "2024-03-05", ok: true},
		{name: "two digit year below pivot", input: "05/03/24", expected: "2024-03-05", ok: true},
		{name: "two digit year above pivot", input: "05/03/78", expected: "1978-03-05", ok: true},
		{name: "single digit day and month", input: "5/3/2024", expected: "2024-03-05", ok: true},
		{name: "embedded in text", input: "value dt 15/08/2023", expected: "2023-08-15", ok: true},
		{name: "no slash date", input: "2024-03-05", ok: false},
		{name: "garbage", input: "hello", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDayFirst(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, ToISODate(parsed))
			}
		})
	}
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "iso", input: "2024-03-05", expected: "2024-03-05"},
		{name: "day first slash", input: "05/03/24", expected: "2024-03-05"},
		{name: "day month name", input: "29-Nov-2025", expected: "2025-11-29"},
		{name: "day month name with time", input: "2-Jan-2024 14:30", expected: "2024-01-02"},
		{name: "dotted", input: "02.01.2006", expected: "2006-01-02"},
		{name: "spelled out", input: "January 2, 2006", expected: "2006-01-02"},
		{name: "extra whitespace", input: "  2024-03-05  ", expected: "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDateString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ToISODate(parsed))
		})
	}
}

func TestParseDateStringErrors(t *testing.T) {
	_, err := ParseDateString("")
	assert.Error(t, err)

	_, err = ParseDateString("not a date")
	assert.Error(t, err)
}

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseISODate("05/03/2024")
	assert.Error(t, err)
}

func TestLooksLikeDate(t *testing.T) {
	assert.True(t, LooksLikeDate("05/03/2024"))
	assert.True(t, LooksLikeDate("29-Nov-2025"))
	assert.False(t, LooksLikeDate("Bank Transaction"))
	assert.False(t, LooksLikeDate("45000"))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2 Jan 2024", CleanDateString("  2   Jan\t2024 "))
}
