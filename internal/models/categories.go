package models

// Category name constants. These are the labels the rule-based
// categorizer emits; the review step may replace them with any other
// label from the matching direction's list.
const (
	CategorySalary              = "Salary"
	CategoryInvestmentsIncome   = "Investments Income"
	CategoryTransfers           = "Transfers"
	CategoryInterest            = "Interest"
	CategoryRentalIncome        = "Rental Income"
	CategoryOtherIncome         = "Other Income"
	CategoryInvestmentPrincipal = "Investment Principal"

	CategoryFoodDining       = "Food & Dining"
	CategoryShopping         = "Shopping"
	CategoryUtilities        = "Utilities"
	CategoryHousingRent      = "Housing/Rent"
	CategoryAutomotiveFuel   = "Automotive/Fuel"
	CategoryCashWithdrawal   = "Cash Withdrawal"
	CategoryTaxes            = "Taxes"
	CategoryInsuranceMedical = "Insurance/Medical"
	CategoryInvestments      = "Investments"
	CategoryChitFunds        = "Chit Funds"
	CategoryOtherExpenses    = "Other Expenses"
)

// IncomeCategories lists the categories selectable for income
// transactions, in display order.
var IncomeCategories = []string{
	CategorySalary,
	CategoryInvestmentsIncome,
	CategoryTransfers,
	CategoryInterest,
	CategoryRentalIncome,
	CategoryOtherIncome,
	CategoryInvestmentPrincipal,
}

// ExpenseCategories lists the categories selectable for expense
// transactions, in display order.
var ExpenseCategories = []string{
	CategoryFoodDining,
	CategoryShopping,
	CategoryUtilities,
	CategoryHousingRent,
	CategoryAutomotiveFuel,
	CategoryTransfers,
	CategoryCashWithdrawal,
	CategoryTaxes,
	CategoryInsuranceMedical,
	CategoryInvestments,
	CategoryChitFunds,
	CategoryInvestmentPrincipal,
	CategoryOtherExpenses,
}

// CategoriesFor returns the selectable categories for a transaction
// type. Unknown types get the expense list, the larger of the two.
func CategoriesFor(txType string) []string {
	if txType == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether name is a known category for the given
// transaction type.
func ValidCategory(txType, name string) bool {
	for _, c := range CategoriesFor(txType) {
		if c == name {
			return true
		}
	}
	return false
}
