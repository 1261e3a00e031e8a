package normalize

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"anand/fintrack/internal/columnmap"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/sheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dualHeaders = []string{"Date", "Narration", "Withdrawal Amt", "Deposit Amt"}

func dualNormalizer(t *testing.T, opts ...Option) *Normalizer {
	t.Helper()
	return New(dualHeaders, columnmap.Map(dualHeaders), logging.NewMockLogger(), opts...)
}

func dualRow(index int, date, narration, withdrawal, deposit string) sheet.DataRow {
	return sheet.DataRow{Index: index, Values: map[string]string{
		"Date":           date,
		"Narration":      narration,
		"Withdrawal Amt": withdrawal,
		"Deposit Amt":    deposit,
	}}
}

func TestRowDebitBecomesExpense(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(3, "01/04/24", "UPI-SWIGGY ORDER", "1,234.50", ""))

	require.True(t, result.IsAdmitted())
	tx := result.Transaction
	assert.Equal(t, "2024-04-01", tx.Date)
	assert.Equal(t, "UPI-SWIGGY ORDER", tx.Description)
	assert.Equal(t, "1234.5", tx.Amount.String())
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, models.SourceBankStatement, tx.Source)
}

func TestRowCreditBecomesIncome(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(4, "02/04/24", "SALARY CREDIT", "", "85,000.00"))

	require.True(t, result.IsAdmitted())
	assert.Equal(t, models.TypeIncome, result.Transaction.Type)
	assert.Equal(t, "85000", result.Transaction.Amount.String())
}

func TestRowCreditWinsWhenBothPresent(t *testing.T) {
	// A row carrying both sides is classified by its credit: a positive
	// deposit makes it income regardless of the withdrawal cell.
	result := dualNormalizer(t).Row(dualRow(5, "03/04/24", "REVERSAL ADJ", "200.00", "50.00"))

	require.True(t, result.IsAdmitted())
	assert.Equal(t, models.TypeIncome, result.Transaction.Type)
	assert.Equal(t, "50", result.Transaction.Amount.String())
}

func TestRowZeroAmountRejected(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(6, "04/04/24", "NO VALUE", "", ""))

	require.False(t, result.IsAdmitted())
	assert.Equal(t, models.RejectZeroAmount, result.Rejection.Reason)
	assert.Equal(t, 6, result.Rejection.RowIndex)
}

func TestRowIgnoredCellRejected(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(7, "05/04/24", "Page No. 2", "100.00", ""))

	require.False(t, result.IsAdmitted())
	assert.Equal(t, models.RejectIgnoredCell, result.Rejection.Reason)
}

func TestRowPlaceholderDescription(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		amount   string
		admitted bool
	}{
		{name: "material amount with date", date: "05/04/24", amount: "500.00", admitted: true},
		{name: "immaterial amount", date: "05/04/24", amount: "50.00", admitted: false},
		{name: "at threshold", date: "05/04/24", amount: "100.00", admitted: false},
		{name: "no recognizable date", date: "45000", amount: "500.00", admitted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dualNormalizer(t).Row(dualRow(8, tt.date, "Bank Transaction", tt.amount, ""))
			assert.Equal(t, tt.admitted, result.IsAdmitted())
			if !tt.admitted {
				assert.Equal(t, models.RejectPlaceholderDesc, result.Rejection.Reason)
			}
		})
	}
}

func TestRowMaterialityThresholdOption(t *testing.T) {
	n := dualNormalizer(t, WithMinMaterialAmount(decimal.NewFromInt(1000)))

	result := n.Row(dualRow(9, "05/04/24", "Bank Transaction", "500.00", ""))
	assert.False(t, result.IsAdmitted())
}

func TestRowSerialDate(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(10, "45000", "ATM WDL", "2000.00", ""))

	require.True(t, result.IsAdmitted())
	assert.Equal(t, "2023-03-15", result.Transaction.Date)
}

func TestRowImplausibleSerialRejected(t *testing.T) {
	result := dualNormalizer(t).Row(dualRow(11, "99999999", "MISREAD COLUMN", "2000.00", ""))

	require.False(t, result.IsAdmitted())
	assert.Equal(t, models.RejectImplausibleDate, result.Rejection.Reason)
}

func TestRowUnparseableDateFallsBackToClock(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	n := dualNormalizer(t, WithClock(func() time.Time { return fixed }))

	result := n.Row(dualRow(12, "n/a", "CASH DEPOSIT", "", "5,000.00"))

	require.True(t, result.IsAdmitted())
	assert.Equal(t, "2024-06-01", result.Transaction.Date)
}

func TestRowDescriptionTruncatedAndDefaulted(t *testing.T) {
	long := strings.Repeat("x", 250)
	result := dualNormalizer(t).Row(dualRow(13, "01/04/24", long, "300.00", ""))
	require.True(t, result.IsAdmitted())
	assert.Len(t, result.Transaction.Description, models.MaxDescriptionLen)

	result = dualNormalizer(t).Row(dualRow(14, "01/04/24", "", "300.00", ""))
	require.True(t, result.IsAdmitted())
	assert.Equal(t, models.PlaceholderDescription, result.Transaction.Description)
}

func TestRowDescriptionTruncatesOnCharacterBoundary(t *testing.T) {
	// A multibyte character straddling the cap must not be split into
	// invalid UTF-8.
	desc := strings.Repeat("x", models.MaxDescriptionLen-1) + "₹500 TRANSFER"
	result := dualNormalizer(t).Row(dualRow(15, "01/04/24", desc, "300.00", ""))

	require.True(t, result.IsAdmitted())
	got := result.Transaction.Description
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, models.MaxDescriptionLen, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "₹"))
	require.NoError(t, result.Transaction.Validate())
}

func TestRowUnifiedAmountFallback(t *testing.T) {
	headers := []string{"Txn Date", "Particulars", "Amount", "Dr/Cr"}
	n := New(headers, columnmap.Map(headers), logging.NewMockLogger())

	row := func(index int, date, desc, amount, flag string) sheet.DataRow {
		return sheet.DataRow{Index: index, Values: map[string]string{
			"Txn Date":    date,
			"Particulars": desc,
			"Amount":      amount,
			"Dr/Cr":       flag,
		}}
	}

	t.Run("negative unified is an expense", func(t *testing.T) {
		result := n.Row(row(2, "01/04/24", "CARD PAYMENT", "(500.00)", ""))
		require.True(t, result.IsAdmitted())
		assert.Equal(t, models.TypeExpense, result.Transaction.Type)
		assert.Equal(t, "500", result.Transaction.Amount.String())
	})

	t.Run("positive unified is income", func(t *testing.T) {
		result := n.Row(row(3, "02/04/24", "REFUND RECEIVED", "750.00", ""))
		require.True(t, result.IsAdmitted())
		assert.Equal(t, models.TypeIncome, result.Transaction.Type)
	})

	t.Run("dr flag vetoes a credited amount", func(t *testing.T) {
		// A positive unified amount lands on the credit side; the Dr
		// flag zeroes that side and nothing remains, so the row drops.
		result := n.Row(row(4, "03/04/24", "POS PURCHASE", "900.00", "Dr"))
		require.False(t, result.IsAdmitted())
		assert.Equal(t, models.RejectNonPositive, result.Rejection.Reason)
	})

	t.Run("dr flag keeps a debited amount", func(t *testing.T) {
		result := n.Row(row(5, "03/04/24", "POS PURCHASE", "(900.00)", "Dr"))
		require.True(t, result.IsAdmitted())
		assert.Equal(t, models.TypeExpense, result.Transaction.Type)
		assert.Equal(t, "900", result.Transaction.Amount.String())
	})

	t.Run("cr flag keeps income", func(t *testing.T) {
		result := n.Row(row(6, "04/04/24", "INTEREST PAID", "120.00", "Cr"))
		require.True(t, result.IsAdmitted())
		assert.Equal(t, models.TypeIncome, result.Transaction.Type)
	})

	t.Run("cr flag vetoes a debited amount", func(t *testing.T) {
		result := n.Row(row(7, "04/04/24", "REVERSED CHARGE", "(120.00)", "Cr"))
		require.False(t, result.IsAdmitted())
		assert.Equal(t, models.RejectNonPositive, result.Rejection.Reason)
	})
}
