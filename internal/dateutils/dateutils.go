// Package dateutils provides the date parsing and normalization rules
// used by the statement pipeline: spreadsheet serial conversion,
// day-first slash dates with two-digit year handling, and a
// best-effort multi-format fallback.
package dateutils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output format for transaction dates.
const DateLayoutISO = "2006-01-02"

// Spreadsheet serial dates count days from this epoch (the "1900"
// date system with its historical two-day offset).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial dates resolving outside this year window are treated as
// misread numeric columns rather than dates.
const MinPlausibleYear = 1900

// MaxPlausibleYear returns the upper bound of the accepted year window.
func MaxPlausibleYear() int {
	return time.Now().Year() + 2
}

// FromSerial converts a spreadsheet serial day count to a UTC time,
// truncated to the calendar date. The fractional part is a time-of-day
// component and never moves the calendar date, so whole days suffice.
// Day arithmetic also keeps absurd serials (misread numeric columns)
// from overflowing; they must still convert so the plausibility check
// can reject them.
func FromSerial(serial float64) time.Time {
	days := math.Floor(serial)
	// Anything this far out is already implausible; clamping keeps the
	// float-to-int conversion defined.
	const maxDays = 1e9
	if days > maxDays {
		days = maxDays
	} else if days < -maxDays {
		days = -maxDays
	}
	return serialEpoch.AddDate(0, 0, int(days))
}

// SerialPlausible reports whether a serial value converts to a date
// within the accepted year window.
func SerialPlausible(serial float64) bool {
	year := FromSerial(serial).Year()
	return year >= MinPlausibleYear && year <= MaxPlausibleYear()
}

var dmySlashPattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)

// dayMonthNamePattern matches dates like 29-Nov-2025, common in bank
// statement exports.
var dayMonthNamePattern = regexp.MustCompile(`\d{1,2}-[A-Za-z]{3}-\d{4}`)

// LooksLikeDate reports whether a string contains a recognizable
// statement date shape (slash-separated day-first or DD-Mon-YYYY).
func LooksLikeDate(s string) bool {
	return dmySlashPattern.MatchString(s) || dayMonthNamePattern.MatchString(s)
}

// ParseDayFirst extracts a D/M/YYYY or D/M/YY date from the string.
// Two-digit years below 50 resolve to the 2000s, the rest to the
// 1900s. Returns false when no slash date is present.
func ParseDayFirst(s string) (time.Time, bool) {
	m := dmySlashPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	day, month, yearRaw := m[1], m[2], m[3]
	year := yearRaw
	if len(yearRaw) == 2 {
		if yearRaw < "50" {
			year = "20" + yearRaw
		} else {
			year = "19" + yearRaw
		}
	}

	t, err := time.Parse(DateLayoutISO, fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// fallbackFormats is the list of layouts tried by ParseDateString, in
// order. Statement exports are wildly inconsistent about this.
var fallbackFormats = []string{
	DateLayoutISO,
	"2006-01-02 15:04:05",
	"2-Jan-2006 15:04",
	"2-Jan-2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"02.01.2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDateString attempts to parse a date string using the common
// statement formats. Returns an error when nothing matches; callers
// decide the fallback (the pipeline uses the current date).
func ParseDateString(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	if t, ok := ParseDayFirst(cleaned); ok {
		return t, nil
	}

	for _, format := range fallbackFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseISODate parses a strict YYYY-MM-DD date. Manual entry points
// use this; the statement pipeline uses the lenient ParseDateString.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD date: %w", err)
	}
	return t, nil
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}
