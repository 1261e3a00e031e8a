// Package amountutils provides decimal amount parsing for the noisy
// number formats found in bank statement spreadsheets.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyNoise = regexp.MustCompile(`[€$£¥₹₨\sA-Za-z]`)

// Standardize converts a statement amount string into a form
// decimal.NewFromString accepts: strips currency symbols and
// whitespace, removes thousands separators, and converts a
// parenthesized value to a leading minus sign.
func Standardize(amountStr string) string {
	s := strings.TrimSpace(amountStr)

	// Parenthesized negatives: (500.00) -> -500.00
	s = strings.ReplaceAll(s, "(", "-")
	s = strings.ReplaceAll(s, ")", "")

	s = currencyNoise.ReplaceAllString(s, "")

	// Thousands separators. Indian statements group as 1,23,456.78, so
	// every comma is a separator, never a decimal point.
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")

	return strings.TrimSpace(s)
}

// Parse parses a statement amount string into a decimal. Empty input
// parses to zero.
func Parse(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := Standardize(amountStr)
	if standardized == "" || standardized == "-" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}

	return amount, nil
}

// ParseLenient parses an amount cell, treating anything unparseable as
// zero. Statement cells routinely hold dashes, blanks, or labels in
// amount columns; those must not abort the row.
func ParseLenient(amountStr string) decimal.Decimal {
	amount, err := Parse(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
