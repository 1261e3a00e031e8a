// Package normalize decides, per statement row, whether the row is a
// real transaction and, if so, resolves its date, signed amount,
// direction and description into a models.Transaction.
package normalize

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"anand/fintrack/internal/amountutils"
	"anand/fintrack/internal/columnmap"
	"anand/fintrack/internal/dateutils"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/sheet"

	"github.com/shopspring/decimal"
)

// Statement boilerplate that disqualifies a whole row wherever it
// appears: generation banners, page numbers, branch codes, asterisk
// separators.
var ignorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(generated\s*on|statement summary|opening balance|end of statement|registered office|cust id|page no|requesting branch code)`),
	regexp.MustCompile(`^\*{2,}`),
	regexp.MustCompile(`^(---|\*{4,})$`),
}

// placeholderPattern matches descriptions that are statement
// boilerplate rather than a real transaction narration.
var placeholderPattern = regexp.MustCompile(`^(bank transaction|bank statement|statement of accounts|page no\.|generated on:)`)

// Normalizer converts labeled statement rows into transactions using
// a column mapping resolved once per sheet.
type Normalizer struct {
	headers     []string
	mapping     columnmap.Mapping
	minMaterial decimal.Decimal
	logger      logging.Logger
	now         func() time.Time
}

// Option customizes a Normalizer.
type Option func(*Normalizer)

// WithMinMaterialAmount overrides the materiality threshold applied to
// rows whose description looks like boilerplate.
func WithMinMaterialAmount(min decimal.Decimal) Option {
	return func(n *Normalizer) {
		n.minMaterial = min
	}
}

// WithClock overrides the time source used for date fallbacks.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a Normalizer for one sheet's headers and mapping.
func New(headers []string, mapping columnmap.Mapping, logger logging.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{
		headers:     headers,
		mapping:     mapping,
		minMaterial: decimal.NewFromInt(100),
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Row runs the admission tests against a single data row and, when
// they pass, materializes a transaction. Rejections carry a reason;
// nothing in here ever returns an error.
func (n *Normalizer) Row(row sheet.DataRow) models.RowResult {
	if reason := n.rejectOnIgnoredCell(row); reason != nil {
		return *reason
	}

	dateRaw := row.Get(n.mapping.DateLabel(n.headers))
	desc := strings.TrimSpace(row.Get(n.mapping.DescriptionLabel(n.headers)))

	debit, credit, unified := n.readAmounts(row)
	amountUsed := firstNonZero(debit, credit, unified)
	if amountUsed.IsZero() {
		return models.Rejected(row.Index, models.RejectZeroAmount, "")
	}

	hasDate := dateutils.LooksLikeDate(dateRaw)

	// Boilerplate descriptions are only admitted when the row still
	// looks like a material transaction: recognizable date and an
	// amount above the materiality threshold.
	if placeholderPattern.MatchString(strings.ToLower(desc)) {
		if !hasDate || amountUsed.LessThanOrEqual(n.minMaterial) {
			return models.Rejected(row.Index, models.RejectPlaceholderDesc, desc)
		}
	}

	// A numeric date cell is a spreadsheet serial. If it converts to an
	// absurd year the column was misread as a date; drop the row.
	if serial, ok := sheet.NumericCell(dateRaw); ok {
		if !dateutils.SerialPlausible(serial) {
			return models.Rejected(row.Index, models.RejectImplausibleDate, dateRaw)
		}
	}

	debit, credit = n.resolveDirection(row, debit, credit, unified)

	txType := models.TypeExpense
	amount := debit
	if credit.IsPositive() {
		txType = models.TypeIncome
		amount = credit
	}
	if !amount.IsPositive() {
		return models.Rejected(row.Index, models.RejectNonPositive, amount.String())
	}

	tx := models.Transaction{
		Date:        n.normalizeDate(dateRaw),
		Description: n.normalizeDescription(desc),
		Amount:      amount,
		Type:        txType,
		Source:      models.SourceBankStatement,
	}
	return models.Admitted(tx)
}

// rejectOnIgnoredCell scans every cell of the row for ignore
// patterns. Returns nil when the row is clean.
func (n *Normalizer) rejectOnIgnoredCell(row sheet.DataRow) *models.RowResult {
	for _, label := range n.headers {
		cell := row.Get(label)
		for _, p := range ignorePatterns {
			if p.MatchString(cell) {
				r := models.Rejected(row.Index, models.RejectIgnoredCell, cell)
				return &r
			}
		}
	}
	return nil
}

// readAmounts parses the debit, credit and unified-amount cells.
// Unparseable cells read as zero.
func (n *Normalizer) readAmounts(row sheet.DataRow) (debit, credit, unified decimal.Decimal) {
	if n.mapping.Debit != "" {
		debit = amountutils.ParseLenient(row.Get(n.mapping.Debit))
	}
	if n.mapping.Credit != "" {
		credit = amountutils.ParseLenient(row.Get(n.mapping.Credit))
	}
	if n.mapping.Amount != "" {
		unified = amountutils.ParseLenient(row.Get(n.mapping.Amount))
	}
	return debit, credit, unified
}

// resolveDirection applies the unified-amount fallback and the
// type-flag override to the raw debit/credit pair.
func (n *Normalizer) resolveDirection(row sheet.DataRow, debit, credit, unified decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if debit.IsZero() && credit.IsZero() && n.mapping.Amount != "" {
		if unified.IsNegative() {
			debit = unified.Abs()
		} else {
			credit = unified
		}
	}

	// The flag only vetoes the opposite side. A row whose value sat
	// entirely on the vetoed side ends up with no amount and is dropped
	// by the non-positive check.
	if n.mapping.Type != "" {
		flag := strings.ToLower(row.Get(n.mapping.Type))
		switch {
		case strings.Contains(flag, "dr") || strings.Contains(flag, "debit"):
			credit = decimal.Zero
		case strings.Contains(flag, "cr") || strings.Contains(flag, "credit"):
			debit = decimal.Zero
		}
	}

	return debit, credit
}

// normalizeDate converts the raw date cell to an ISO calendar date.
// Serial numbers use the spreadsheet epoch; day-first slash dates and
// the common textual formats are tried next; total failure falls back
// to today rather than dropping an otherwise valid row.
func (n *Normalizer) normalizeDate(dateRaw string) string {
	if serial, ok := sheet.NumericCell(dateRaw); ok {
		return dateutils.ToISODate(dateutils.FromSerial(serial))
	}

	if t, err := dateutils.ParseDateString(dateRaw); err == nil {
		return dateutils.ToISODate(t)
	}

	n.logger.Debug("Unparseable date cell, falling back to current date",
		logging.Field{Key: logging.FieldDate, Value: dateRaw})
	return dateutils.ToISODate(n.now())
}

// normalizeDescription caps the description at MaxDescriptionLen
// characters. The cap counts runes, not bytes; a multibyte character
// must never be split at the boundary.
func (n *Normalizer) normalizeDescription(desc string) string {
	if utf8.RuneCountInString(desc) > models.MaxDescriptionLen {
		runes := []rune(desc)
		desc = strings.TrimSpace(string(runes[:models.MaxDescriptionLen]))
	}
	if desc == "" {
		return models.PlaceholderDescription
	}
	return desc
}

func firstNonZero(values ...decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}
