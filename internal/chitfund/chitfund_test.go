package chitfund

import (
	"context"
	"testing"

	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/persister"
	"anand/fintrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	beat := decimal.NewFromInt(50000)

	t.Run("valid entry", func(t *testing.T) {
		entry, err := NewEntry("2024-04-01", beat, decimal.NewFromInt(8000), "Family Chit")
		require.NoError(t, err)
		assert.Equal(t, "42000", entry.NetPaid().String())
	})

	t.Run("zero dividend", func(t *testing.T) {
		entry, err := NewEntry("2024-04-01", beat, decimal.Zero, "")
		require.NoError(t, err)
		assert.Equal(t, "50000", entry.NetPaid().String())
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := NewEntry("01/04/2024", beat, decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("negative dividend", func(t *testing.T) {
		_, err := NewEntry("2024-04-01", beat, decimal.NewFromInt(-1), "")
		assert.Error(t, err)
	})

	t.Run("dividend at beat amount", func(t *testing.T) {
		_, err := NewEntry("2024-04-01", beat, beat, "")
		assert.Error(t, err)
	})

	t.Run("non positive beat", func(t *testing.T) {
		_, err := NewEntry("2024-04-01", decimal.Zero, decimal.Zero, "")
		assert.Error(t, err)
	})
}

func TestEntryTransaction(t *testing.T) {
	entry, err := NewEntry("2024-04-01", decimal.NewFromInt(50000), decimal.NewFromInt(8000), "Family Chit")
	require.NoError(t, err)

	tx := entry.Transaction()
	assert.Equal(t, "2024-04-01", tx.Date)
	assert.Equal(t, "Chit Fund Payment (Family Chit)", tx.Description)
	assert.Equal(t, "42000", tx.Amount.String())
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.Equal(t, models.CategoryChitFunds, tx.Category)
	assert.Equal(t, models.SourceManualChit, tx.Source)

	require.NotNil(t, tx.ChitFund)
	assert.Equal(t, "50000", tx.ChitFund.BeatAmount.String())
	assert.Equal(t, "8000", tx.ChitFund.DividendReceived.String())
	assert.Equal(t, "42000", tx.ChitFund.AmountPaid.String())

	require.NoError(t, tx.Validate())
}

func TestEntryTransactionDefaultDescription(t *testing.T) {
	entry, err := NewEntry("2024-04-01", decimal.NewFromInt(50000), decimal.Zero, "")
	require.NoError(t, err)
	assert.Equal(t, "Chit Fund Payment", entry.Transaction().Description)
}

func TestServiceRecordAndDuplicate(t *testing.T) {
	s := store.NewMockStore()
	svc := NewService(s, logging.NewMockLogger())
	ctx := context.Background()

	entry, err := NewEntry("2024-04-01", DefaultBeatAmount, decimal.NewFromInt(5000), "")
	require.NoError(t, err)

	result, err := svc.Record(ctx, "anand", entry)
	require.NoError(t, err)
	assert.Equal(t, persister.Result{Inserted: 1, Skipped: 0}, result)

	// Recording the same month again is a no-op.
	result, err = svc.Record(ctx, "anand", entry)
	require.NoError(t, err)
	assert.Equal(t, persister.Result{Inserted: 0, Skipped: 1}, result)
	assert.Len(t, s.Transactions["anand"], 1)
}

func TestServiceSummarize(t *testing.T) {
	s := store.NewMockStore()
	svc := NewService(s, logging.NewMockLogger())
	ctx := context.Background()

	months := []struct {
		date     string
		dividend int64
	}{
		{date: "2024-02-01", dividend: 0},
		{date: "2024-03-01", dividend: 6000},
		{date: "2024-04-01", dividend: 8000},
	}
	for _, m := range months {
		entry, err := NewEntry(m.date, DefaultBeatAmount, decimal.NewFromInt(m.dividend), "")
		require.NoError(t, err)
		_, err = svc.Record(ctx, "anand", entry)
		require.NoError(t, err)
	}

	summary, err := svc.Summarize(ctx, "anand")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Payments)
	assert.Equal(t, "150000", summary.TotalBeat.String())
	assert.Equal(t, "14000", summary.TotalDividend.String())
	assert.Equal(t, "136000", summary.TotalPaid.String())
}

func TestServiceSummarizeEmpty(t *testing.T) {
	svc := NewService(store.NewMockStore(), logging.NewMockLogger())

	summary, err := svc.Summarize(context.Background(), "anand")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Payments)
	assert.True(t, summary.TotalPaid.IsZero())
}
