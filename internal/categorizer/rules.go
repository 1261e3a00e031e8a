package categorizer

import (
	"regexp"

	"anand/fintrack/internal/models"
)

// Rule maps a description pattern to a category. Rules are evaluated
// top to bottom per direction and the first match wins. Require and
// Exclude refine a match: both patterns run against the same
// lower-cased description.
type Rule struct {
	Category string
	Match    *regexp.Regexp
	Require  *regexp.Regexp
	Exclude  *regexp.Regexp
}

func (r Rule) matches(desc string) bool {
	if !r.Match.MatchString(desc) {
		return false
	}
	if r.Require != nil && !r.Require.MatchString(desc) {
		return false
	}
	if r.Exclude != nil && r.Exclude.MatchString(desc) {
		return false
	}
	return true
}

// DefaultIncomeRules is the built-in rule table for income
// transactions. Principal returns are tested before the interest
// vocabulary because redemption narrations usually mention both.
var DefaultIncomeRules = []Rule{
	{
		Category: models.CategoryInvestmentPrincipal,
		Match:    regexp.MustCompile(`auto_redeem|princl|fd credit|fixed deposit|maturity`),
		Exclude:  regexp.MustCompile(`interest`),
	},
	{Category: models.CategoryInterest, Match: regexp.MustCompile(`interest|int|fd`)},
	{Category: models.CategorySalary, Match: regexp.MustCompile(`salary|sal|payroll|credit|employer|wages`)},
	{Category: models.CategoryRentalIncome, Match: regexp.MustCompile(`rent|rental`)},
	{Category: models.CategoryTransfers, Match: regexp.MustCompile(`transfer|imps|neft|rtgs|p2p|paytm|gpay|upi|phonepe|a/c transfer`)},
}

// DefaultExpenseRules is the built-in rule table for expense
// transactions.
var DefaultExpenseRules = []Rule{
	{
		Category: models.CategoryInvestmentPrincipal,
		Match:    regexp.MustCompile(`fd through|fixed deposit|invest|purchase`),
		Require:  regexp.MustCompile(`fd`),
	},
	{Category: models.CategoryChitFunds, Match: regexp.MustCompile(`\bmsil\b|chit fund`)},
	{Category: models.CategoryHousingRent, Match: regexp.MustCompile(`rent|emi|loan|mortgage|home`)},
	{Category: models.CategoryAutomotiveFuel, Match: regexp.MustCompile(`fuel|petrol|gas|esso|shell|hpcl|bpcl|oil`)},
	{Category: models.CategoryFoodDining, Match: regexp.MustCompile(`swiggy|zomato|ubereats|kfc|mcd|cafe|restaurant|food|dining`)},
	{Category: models.CategoryShopping, Match: regexp.MustCompile(`amazon|flipkart|myntra|shop|online purchase|e-com|starbucks|subscriptions|netflix|spotify`)},
	{Category: models.CategoryUtilities, Match: regexp.MustCompile(`electricity|water|utility|internet|mobile|phone|bill|jio|airtel|gas bill`)},
	{Category: models.CategoryCashWithdrawal, Match: regexp.MustCompile(`atm|cash|withdrawal`)},
	{Category: models.CategoryTransfers, Match: regexp.MustCompile(`transfer|imps|neft|rtgs|p2p|paytm|gpay|upi|phonepe|a/c transfer`)},
	{Category: models.CategoryTaxes, Match: regexp.MustCompile(`tax|gst|tds|itax`)},
	{Category: models.CategoryInsuranceMedical, Match: regexp.MustCompile(`insurance|lic|health care|hospital|medical`)},
	{Category: models.CategoryInvestments, Match: regexp.MustCompile(`sip|mutual fund|investment|equity|elss`)},
}
