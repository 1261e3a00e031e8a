// Package columnmap assigns semantic roles to statement header labels
// using an ordered table of pattern rules. Bank exports disagree on
// almost everything, so every assignment is a heuristic with a fixed
// precedence: for each role, the first (leftmost) matching label wins.
package columnmap

import (
	"regexp"
	"strings"
)

// Role is a semantic column role in a bank statement.
type Role string

const (
	RoleDate        Role = "date"
	RoleDescription Role = "description"
	RoleDebit       Role = "debit"
	RoleCredit      Role = "credit"
	RoleAmount      Role = "amount"
	RoleType        Role = "type"
)

// Rule matches a lower-cased header label against a role. A role may
// have several rules; they are tried in table order and the first hit
// assigns the label. Exclude vetoes a match entirely.
type Rule struct {
	Role    Role
	Match   *regexp.Regexp
	Exclude *regexp.Regexp
}

// DefaultRules is the built-in rule table. Order matters within a
// role: the "amount" role's sub-rules encode that amount-like labels
// beat total/value labels, and balance columns are never amounts.
var DefaultRules = []Rule{
	{Role: RoleDate, Match: regexp.MustCompile(`date`)},
	{Role: RoleDescription, Match: regexp.MustCompile(`description|narration|details|remarks|particulars`)},
	{Role: RoleDebit, Match: regexp.MustCompile(`\b(debit|withdrawal|out|dr)\b`)},
	{Role: RoleCredit, Match: regexp.MustCompile(`\b(credit|deposit|in|cr)\b`)},
	{Role: RoleAmount, Match: regexp.MustCompile(`amount`), Exclude: regexp.MustCompile(`amounting|bal`)},
	{Role: RoleAmount, Match: regexp.MustCompile(`\bamt\b|total`), Exclude: regexp.MustCompile(`bal`)},
	{Role: RoleAmount, Match: regexp.MustCompile(`\bvalue\b`), Exclude: regexp.MustCompile(`value\s*dt|bal`)},
	{Role: RoleType, Match: regexp.MustCompile(`\b(dr|cr|cr/dr|type|txn type|debit|credit|debitcredit)\b`)},
}

// Mapping assigns a header label to each role; empty means unmapped.
// A single label may serve multiple roles ("Dr" maps to both debit
// and type, which is how single-flag statements work).
type Mapping struct {
	Date        string
	Description string
	Debit       string
	Credit      string
	Amount      string
	Type        string
}

// Map builds a Mapping from the header labels using DefaultRules.
func Map(headers []string) Mapping {
	return MapWithRules(headers, DefaultRules)
}

// MapWithRules builds a Mapping using a caller-supplied rule table.
// Labels are scanned left to right; each role is filled at most once.
func MapWithRules(headers []string, rules []Rule) Mapping {
	var m Mapping
	for _, header := range headers {
		lower := strings.ToLower(header)
		for _, rule := range rules {
			if m.get(rule.Role) != "" {
				continue
			}
			if !rule.Match.MatchString(lower) {
				continue
			}
			if rule.Exclude != nil && rule.Exclude.MatchString(lower) {
				continue
			}
			m.set(rule.Role, header)
		}
	}
	return m
}

// DateLabel returns the mapped date label, falling back to the first
// header when the role is unmapped.
func (m Mapping) DateLabel(headers []string) string {
	if m.Date != "" {
		return m.Date
	}
	if len(headers) > 0 {
		return headers[0]
	}
	return ""
}

// DescriptionLabel returns the mapped description label, falling back
// to the second header when the role is unmapped.
func (m Mapping) DescriptionLabel(headers []string) string {
	if m.Description != "" {
		return m.Description
	}
	if len(headers) > 1 {
		return headers[1]
	}
	return ""
}

func (m Mapping) get(role Role) string {
	switch role {
	case RoleDate:
		return m.Date
	case RoleDescription:
		return m.Description
	case RoleDebit:
		return m.Debit
	case RoleCredit:
		return m.Credit
	case RoleAmount:
		return m.Amount
	case RoleType:
		return m.Type
	}
	return ""
}

func (m *Mapping) set(role Role, label string) {
	switch role {
	case RoleDate:
		m.Date = label
	case RoleDescription:
		m.Description = label
	case RoleDebit:
		m.Debit = label
	case RoleCredit:
		m.Credit = label
	case RoleAmount:
		m.Amount = label
	case RoleType:
		m.Type = label
	}
}
