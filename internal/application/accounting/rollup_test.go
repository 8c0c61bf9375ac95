package accounting_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/accounting"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
	"github.com/sbkgestion/stock-api/internal/infrastructure/memory"
	"github.com/sbkgestion/stock-api/pkg/logger"
)

func newRollup(t *testing.T) (*accounting.RollupUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := accounting.NewRollupUseCase(store.Summaries(), store.SalesInvoices(), store.PurchaseInvoices(), log)
	return uc, store
}

func seedSale(t *testing.T, store *memory.Store, date time.Time, amountHT int64) {
	t.Helper()
	err := store.SalesInvoices().Create(&entity.SalesInvoice{
		ID:       uuid.New().String(),
		Numero:   uuid.New().String(),
		Date:     date,
		AmountHT: decimal.NewFromInt(amountHT),
	})
	require.NoError(t, err)
}

func seedPurchase(t *testing.T, store *memory.Store, date time.Time, amountHT int64) {
	t.Helper()
	err := store.PurchaseInvoices().Create(&entity.PurchaseInvoice{
		ID:       uuid.New().String(),
		Numero:   uuid.New().String(),
		Date:     date,
		AmountHT: decimal.NewFromInt(amountHT),
	})
	require.NoError(t, err)
}

func TestGenerate_InsertsMonthsAndQuarters(t *testing.T) {
	uc, _ := newRollup(t)

	inserted, err := uc.Generate(context.Background(), 2023, 2023)
	require.NoError(t, err)

	assert.Equal(t, 16, inserted, "12 months + 4 quarters per year")
}

func TestGenerate_IsIdempotent(t *testing.T) {
	uc, _ := newRollup(t)
	ctx := context.Background()

	first, err := uc.Generate(ctx, 2023, 2023)
	require.NoError(t, err)
	require.Equal(t, 16, first)

	second, err := uc.Generate(ctx, 2023, 2023)
	require.NoError(t, err)

	assert.Zero(t, second, "re-running the batch only fills gaps")
}

func TestGenerate_AggregatesInvoiceTotals(t *testing.T) {
	uc, store := newRollup(t)
	ctx := context.Background()

	june := time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC)
	seedSale(t, store, june, 700)
	seedSale(t, store, june.AddDate(0, 0, 3), 300)
	seedPurchase(t, store, june, 600)
	// outside June, inside Q2
	seedSale(t, store, time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC), 100)

	_, err := uc.Generate(ctx, 2023, 2023)
	require.NoError(t, err)

	monthRows, err := uc.List(ctx, repository.SummaryFilter{
		PeriodType: entity.PeriodMonth,
		From:       time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, monthRows, 1)

	juneRow := monthRows[0]
	assert.True(t, decimal.NewFromInt(1000).Equal(juneRow.Revenue), "June revenue, got %s", juneRow.Revenue)
	assert.True(t, decimal.NewFromInt(600).Equal(juneRow.Purchases), "June purchases, got %s", juneRow.Purchases)
	assert.True(t, decimal.NewFromInt(400).Equal(juneRow.GrossMargin), "June gross margin, got %s", juneRow.GrossMargin)
	assert.True(t, decimal.NewFromInt(400).Equal(juneRow.NetResult), "net result equals gross margin while overhead is 0")

	quarterRows, err := uc.List(ctx, repository.SummaryFilter{
		PeriodType: entity.PeriodQuarter,
		From:       time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, quarterRows, 1)
	assert.True(t, decimal.NewFromInt(1100).Equal(quarterRows[0].Revenue), "Q2 includes April and June, got %s", quarterRows[0].Revenue)
}

func TestGenerate_InvalidYearOrder(t *testing.T) {
	uc, _ := newRollup(t)

	_, err := uc.Generate(context.Background(), 2024, 2023)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateOverhead_RecomputesNetResult(t *testing.T) {
	uc, store := newRollup(t)
	ctx := context.Background()

	june := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	seedSale(t, store, june, 1000)
	seedPurchase(t, store, june, 600)

	_, err := uc.Generate(ctx, 2023, 2023)
	require.NoError(t, err)

	rows, err := uc.List(ctx, repository.SummaryFilter{
		PeriodType: entity.PeriodMonth,
		From:       time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	out, err := uc.UpdateOverhead(ctx, rows[0].ID, decimal.NewFromInt(150))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(150).Equal(out.Overhead))
	assert.True(t, decimal.NewFromInt(250).Equal(out.NetResult), "netResult = grossMargin - overhead, got %s", out.NetResult)
	assert.True(t, decimal.NewFromInt(1000).Equal(out.Revenue), "aggregated totals stay frozen")
}

func TestUpdateOverhead_RejectsNegative(t *testing.T) {
	uc, _ := newRollup(t)

	_, err := uc.UpdateOverhead(context.Background(), "any", decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateOverhead_NotFound(t *testing.T) {
	uc, _ := newRollup(t)

	_, err := uc.UpdateOverhead(context.Background(), "missing", decimal.NewFromInt(10))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemovesRow(t *testing.T) {
	uc, _ := newRollup(t)
	ctx := context.Background()

	_, err := uc.Generate(ctx, 2023, 2023)
	require.NoError(t, err)
	rows, err := uc.List(ctx, repository.SummaryFilter{PeriodType: entity.PeriodMonth})
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	require.NoError(t, uc.Delete(ctx, rows[0].ID))

	assert.ErrorIs(t, uc.Delete(ctx, rows[0].ID), domain.ErrNotFound)
}
