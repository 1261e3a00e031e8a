// Package models defines the data types shared across the ingestion
// pipeline: the normalized Transaction, the per-row pipeline result,
// and the category vocabulary.
package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Transaction direction values. Direction is derived from the resolved
// credit/debit amounts: credit > 0 means income, everything else expense.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Source tags attached to transactions depending on how they entered
// the system.
const (
	SourceBankStatement = "Bank Statement"
	SourceManualChit    = "Manual Chit Fund Entry"
)

// MaxDescriptionLen is the hard cap applied to transaction
// descriptions, counted in characters rather than bytes.
const MaxDescriptionLen = 200

// PlaceholderDescription is used when a statement row has no usable
// description cell at all.
const PlaceholderDescription = "Bank Transaction"

// ChitFundDetails is the optional sub-record attached to manual chit
// fund payments. AmountPaid is the net expense (BeatAmount minus
// DividendReceived) and matches the parent transaction amount.
type ChitFundDetails struct {
	BeatAmount       decimal.Decimal `json:"beatAmount" yaml:"beat_amount"`
	DividendReceived decimal.Decimal `json:"dividendReceived" yaml:"dividend_received"`
	AmountPaid       decimal.Decimal `json:"amountPaid" yaml:"amount_paid"`
}

// Transaction is the normalized output of the ingestion pipeline and
// the record shape held by the document store. ID and CreatedAt are
// assigned by the store on insert and are empty on freshly parsed
// batches.
type Transaction struct {
	ID          string           `csv:"-" json:"id" yaml:"id"`
	Date        string           `csv:"Date" json:"date" yaml:"date"`
	Description string           `csv:"Description" json:"description" yaml:"description"`
	Amount      decimal.Decimal  `csv:"Amount" json:"amount" yaml:"amount"`
	Type        string           `csv:"Type" json:"type" yaml:"type"`
	Category    string           `csv:"Category" json:"category" yaml:"category"`
	Source      string           `csv:"Source" json:"source" yaml:"source"`
	ChitFund    *ChitFundDetails `csv:"-" json:"chitFund,omitempty" yaml:"chit_fund,omitempty"`
	CreatedAt   time.Time        `csv:"-" json:"createdAt" yaml:"created_at"`
}

// Validate checks the invariants every persisted transaction must hold.
func (t Transaction) Validate() error {
	if t.Date == "" {
		return fmt.Errorf("transaction date is empty")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)
	}
	return nil
}

// IsIncome returns true for income transactions.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}
