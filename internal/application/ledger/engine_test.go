package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, id string, stock int64) {
	t.Helper()
	now := time.Now()
	err := store.Products().Create(&entity.Product{
		ID:             id,
		Reference:      "P00001",
		Name:           "ciment 25kg",
		PrixAchat:      decimal.NewFromInt(5),
		PrixUnitaireHT: decimal.NewFromInt(8),
		TVARate:        decimal.NewFromFloat(0.19),
		StockActuel:    stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
}

func currentStock(t *testing.T, store *memory.Store, id string) int64 {
	t.Helper()
	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockActuel
}

func lines(id string, qty int64) []entity.DocumentLine {
	return []entity.DocumentLine{{ProductID: id, Quantity: qty}}
}

// TestReplaceLines_DocumentLifecycle walks a product through a purchase, a
// sale and both deletions, checking the stock returns to its baseline.
func TestReplaceLines_DocumentLifecycle(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 100)
	engine := ledger.NewEngine()
	products := store.Products()

	// purchase +20
	require.NoError(t, engine.ReplaceLines(products, entity.KindPurchaseInvoice, nil, lines("p1", 20)))
	assert.Equal(t, int64(120), currentStock(t, store, "p1"))

	// sale -50
	require.NoError(t, engine.ReplaceLines(products, entity.KindSalesInvoice, nil, lines("p1", 50)))
	assert.Equal(t, int64(70), currentStock(t, store, "p1"))

	// delete the sale: +50 back
	require.NoError(t, engine.ReplaceLines(products, entity.KindSalesInvoice, lines("p1", 50), nil))
	assert.Equal(t, int64(120), currentStock(t, store, "p1"))

	// delete the purchase: back to the baseline
	require.NoError(t, engine.ReplaceLines(products, entity.KindPurchaseInvoice, lines("p1", 20), nil))
	assert.Equal(t, int64(100), currentStock(t, store, "p1"))
}

func TestReplaceLines_InsufficientStock(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 40)
	engine := ledger.NewEngine()

	err := engine.ReplaceLines(store.Products(), entity.KindSalesInvoice, nil, lines("p1", 50))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(40), currentStock(t, store, "p1"), "a rejected movement must not touch the stock")
}

// TestReplaceLines_AggregatesRepeatedLines guards against the split-line
// over-commit: two lines of 60 on a stock of 100 must fail as one demand of
// 120, not pass as two independent checks of 60.
func TestReplaceLines_AggregatesRepeatedLines(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 100)
	engine := ledger.NewEngine()

	err := engine.ReplaceLines(store.Products(), entity.KindSalesInvoice, nil, []entity.DocumentLine{
		{ProductID: "p1", Quantity: 60},
		{ProductID: "p1", Quantity: 60},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), currentStock(t, store, "p1"))
}

func TestReplaceLines_NoOpUpdate(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 100)
	engine := ledger.NewEngine()

	old := lines("p1", 30)
	same := []entity.DocumentLine{{ProductID: "p1", Quantity: 10}, {ProductID: "p1", Quantity: 20}}
	require.NoError(t, engine.ReplaceLines(store.Products(), entity.KindSalesInvoice, old, same))

	assert.Equal(t, int64(100), currentStock(t, store, "p1"), "an update with the same aggregated lines moves nothing")
}

func TestReplaceLines_UpdateAppliesNetDelta(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 100)
	engine := ledger.NewEngine()
	products := store.Products()

	require.NoError(t, engine.ReplaceLines(products, entity.KindSalesInvoice, nil, lines("p1", 30)))
	require.NoError(t, engine.ReplaceLines(products, entity.KindSalesInvoice, lines("p1", 30), lines("p1", 50)))

	assert.Equal(t, int64(50), currentStock(t, store, "p1"), "30 reversed, 50 applied, as one -20 movement")
}

func TestReplaceLines_UnknownProduct(t *testing.T) {
	store := memory.NewStore()
	engine := ledger.NewEngine()

	err := engine.ReplaceLines(store.Products(), entity.KindSalesInvoice, nil, lines("missing", 1))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplaceLines_RecordsMovementSnapshot(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "p1", 100)
	engine := ledger.NewEngine()

	require.NoError(t, engine.ReplaceLines(store.Products(), entity.KindSalesInvoice, nil, lines("p1", 30)))

	p, err := store.Products().GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.StockAvantMouvement)
	assert.Equal(t, int64(70), p.StockApresMouvement)
}
