package models

// Rejection reasons reported by the row normalizer. Rejections are
// diagnostics, not errors: a rejected row never aborts the batch.
const (
	RejectEmptyRow        = "empty_row"
	RejectIgnoredCell     = "ignored_cell"
	RejectZeroAmount      = "zero_amount"
	RejectPlaceholderDesc = "placeholder_description"
	RejectImplausibleDate = "implausible_serial_date"
	RejectNonPositive     = "non_positive_amount"
)

// Rejection records why a statement row was not admitted.
type Rejection struct {
	RowIndex int    `json:"rowIndex"`
	Reason   string `json:"reason"`
	Detail   string `json:"detail,omitempty"`
}

// RowResult is the outcome of normalizing a single statement row:
// either an admitted Transaction or a Rejection with a reason.
type RowResult struct {
	Transaction *Transaction
	Rejection   *Rejection
}

// Admitted builds a RowResult carrying a transaction.
func Admitted(tx Transaction) RowResult {
	return RowResult{Transaction: &tx}
}

// Rejected builds a RowResult carrying a rejection reason.
func Rejected(rowIndex int, reason, detail string) RowResult {
	return RowResult{Rejection: &Rejection{RowIndex: rowIndex, Reason: reason, Detail: detail}}
}

// IsAdmitted reports whether the row produced a transaction.
func (r RowResult) IsAdmitted() bool {
	return r.Transaction != nil
}
