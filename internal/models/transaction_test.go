package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		Date:        "2024-04-01",
		Description: "UPI-SWIGGY ORDER",
		Amount:      decimal.NewFromInt(450),
		Type:        TypeExpense,
		Category:    CategoryFoodDining,
		Source:      SourceBankStatement,
	}
}

func TestTransactionValidate(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{name: "empty date", mutate: func(tx *Transaction) { tx.Date = "" }},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }},
		{name: "unknown type", mutate: func(tx *Transaction) { tx.Type = "refund" }},
		{name: "oversized description", mutate: func(tx *Transaction) {
			tx.Description = strings.Repeat("x", MaxDescriptionLen+1)
		}},
		{name: "oversized multibyte description", mutate: func(tx *Transaction) {
			tx.Description = strings.Repeat("₹", MaxDescriptionLen+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			assert.Error(t, tx.Validate())
		})
	}
}

func TestTransactionValidateCountsCharactersNotBytes(t *testing.T) {
	tx := validTransaction()
	// 200 rupee signs are 600 bytes but exactly at the character cap.
	tx.Description = strings.Repeat("₹", MaxDescriptionLen)
	assert.NoError(t, tx.Validate())
}

func TestTransactionIsIncome(t *testing.T) {
	tx := validTransaction()
	assert.False(t, tx.IsIncome())

	tx.Type = TypeIncome
	assert.True(t, tx.IsIncome())
}

func TestCategoriesFor(t *testing.T) {
	assert.Equal(t, IncomeCategories, CategoriesFor(TypeIncome))
	assert.Equal(t, ExpenseCategories, CategoriesFor(TypeExpense))
	assert.Equal(t, ExpenseCategories, CategoriesFor("unknown"))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(TypeIncome, CategorySalary))
	assert.True(t, ValidCategory(TypeExpense, CategoryChitFunds))
	assert.False(t, ValidCategory(TypeExpense, CategorySalary))
	assert.False(t, ValidCategory(TypeIncome, "Cryptocurrency"))
}

func TestRowResult(t *testing.T) {
	admitted := Admitted(validTransaction())
	assert.True(t, admitted.IsAdmitted())
	assert.Nil(t, admitted.Rejection)

	rejected := Rejected(7, RejectZeroAmount, "")
	assert.False(t, rejected.IsAdmitted())
	assert.Equal(t, 7, rejected.Rejection.RowIndex)
	assert.Equal(t, RejectZeroAmount, rejected.Rejection.Reason)
}
