package documents_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/infrastructure/memory"
)

// fixture wires the three document use cases over one in-memory store.
type fixture struct {
	store    *memory.Store
	sales    *documents.SalesInvoiceUseCase
	purchase *documents.PurchaseInvoiceUseCase
	exits    *documents.ExitNoteUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)
	engine := ledger.NewEngine()
	return &fixture{
		store:    store,
		sales:    documents.NewSalesInvoiceUseCase(txRunner, engine, store.Clients(), store.Products(), store.SalesInvoices()),
		purchase: documents.NewPurchaseInvoiceUseCase(txRunner, engine, store.Suppliers(), store.Products(), store.PurchaseInvoices()),
		exits:    documents.NewExitNoteUseCase(txRunner, engine, store.Products(), store.ExitNotes()),
	}
}

func (f *fixture) seedProduct(t *testing.T, id string, stock int64) {
	t.Helper()
	now := time.Now()
	err := f.store.Products().Create(&entity.Product{
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

func (f *fixture) seedClient(t *testing.T, id string) {
	t.Helper()
	now := time.Now()
	err := f.store.Clients().Create(&entity.Client{
		ID:           id,
		Numero:       "C00001",
		Name:         "Entreprise Ben Salah",
		Address:      "Zone industrielle, Sfax",
		Type:         entity.ClientTypeEntreprise,
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

func (f *fixture) seedSupplier(t *testing.T, id string) {
	t.Helper()
	now := time.Now()
	err := f.store.Suppliers().Create(&entity.Supplier{
		ID:           id,
		Numero:       "FOU00001",
		Name:         "Société des Ciments",
		Address:      "Route de Gabès",
		Type:         entity.SupplierTypeProduits,
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

func (f *fixture) stock(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.store.Products().GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.StockActuel
}
