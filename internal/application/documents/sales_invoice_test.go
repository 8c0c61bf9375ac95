package documents_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

func salesRequest(clientID string, lines ...dto.LineRequest) dto.SalesInvoiceRequest {
	return dto.SalesInvoiceRequest{
		ClientID: clientID,
		Type:     entity.FactureTypeClient,
		Lines:    lines,
	}
}

func TestSalesInvoiceCreate_DecrementsStockAndComputesTotals(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")

	out, err := f.sales.Create(context.Background(), salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)

	assert.Equal(t, "F00001", out.Numero)
	assert.Equal(t, entity.StatusEnAttente, out.Status, "settlement status defaults")
	assert.Equal(t, int64(90), f.stock(t, "p1"))

	// unit price 8 × 10 = 80 HT, 19% VAT = 15.2, TTC 95.2
	assert.True(t, decimal.NewFromInt(80).Equal(out.AmountHT), "montant HT, got %s", out.AmountHT)
	assert.True(t, decimal.NewFromFloat(15.2).Equal(out.TVA), "TVA, got %s", out.TVA)
	assert.True(t, decimal.NewFromFloat(95.2).Equal(out.AmountTTC), "montant TTC, got %s", out.AmountTTC)

	require.NotNil(t, out.Client)
	assert.Equal(t, "C00001", out.Client.Numero)
	require.Len(t, out.Lines, 1)
	require.NotNil(t, out.Lines[0].Product)
	assert.Equal(t, int64(90), out.Lines[0].Product.StockActuel, "lines carry the post-movement product state")
}

func TestSalesInvoiceCreate_AppliesRemiseOnTTC(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")

	in := salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 10})
	in.Remise = decimal.NewFromInt(5)

	out, err := f.sales.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(90.2).Equal(out.AmountTTC), "TTC = HT + TVA - remise, got %s", out.AmountTTC)
}

func TestSalesInvoiceCreate_SequenceAdvances(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")

	first, err := f.sales.Create(context.Background(), salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)
	second, err := f.sales.Create(context.Background(), salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	assert.Equal(t, "F00001", first.Numero)
	assert.Equal(t, "F00002", second.Numero)
}

func TestSalesInvoiceCreate_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 40)
	f.seedClient(t, "c1")

	_, err := f.sales.Create(context.Background(), salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 50}))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(40), f.stock(t, "p1"))

	invoices, err := f.sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invoices, "nothing persists when the movement is rejected")
}

func TestSalesInvoiceCreate_PartialShortfallRollsBackAllProducts(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedProduct(t, "p2", 3)
	f.seedClient(t, "c1")

	_, err := f.sales.Create(context.Background(), salesRequest("c1",
		dto.LineRequest{ProductID: "p1", Quantity: 10},
		dto.LineRequest{ProductID: "p2", Quantity: 5},
	))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), f.stock(t, "p1"), "the first product's applied delta is rolled back")
	assert.Equal(t, int64(3), f.stock(t, "p2"))
}

func TestSalesInvoiceCreate_UnknownClient(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)

	_, err := f.sales.Create(context.Background(), salesRequest("missing", dto.LineRequest{ProductID: "p1", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesInvoiceCreate_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	f.seedClient(t, "c1")

	_, err := f.sales.Create(context.Background(), salesRequest("c1", dto.LineRequest{ProductID: "missing", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesInvoiceCreate_RejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")
	ctx := context.Background()

	_, err := f.sales.Create(ctx, dto.SalesInvoiceRequest{ClientID: "c1", Type: entity.FactureTypeClient})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no lines")

	_, err = f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 0}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")

	in := salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 1})
	in.Type = "Devis"
	_, err = f.sales.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown invoice type")
}

func TestSalesInvoiceUpdate_AppliesNetDeltaAndKeepsNumero(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")
	ctx := context.Background()

	created, err := f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)
	require.Equal(t, int64(90), f.stock(t, "p1"))

	updated, err := f.sales.Update(ctx, created.ID, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 25}))
	require.NoError(t, err)

	assert.Equal(t, created.Numero, updated.Numero, "the numero never changes after creation")
	assert.Equal(t, int64(75), f.stock(t, "p1"), "only the +15 difference is taken")
	assert.True(t, decimal.NewFromInt(200).Equal(updated.AmountHT), "totals recomputed from the new lines, got %s", updated.AmountHT)
}

func TestSalesInvoiceUpdate_InsufficientStockKeepsOldLines(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 50)
	f.seedClient(t, "c1")
	ctx := context.Background()

	created, err := f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)

	_, err = f.sales.Update(ctx, created.ID, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 80}))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(40), f.stock(t, "p1"), "stock keeps the original sale only")
	got, err := f.sales.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Lines[0].Quantity, "the invoice still carries its old lines")
}

func TestSalesInvoiceUpdate_NotFound(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")

	_, err := f.sales.Update(context.Background(), "missing", salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesInvoiceDelete_RestoresStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedClient(t, "c1")
	ctx := context.Background()

	created, err := f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 30}))
	require.NoError(t, err)
	require.Equal(t, int64(70), f.stock(t, "p1"))

	require.NoError(t, f.sales.Delete(ctx, created.ID))

	assert.Equal(t, int64(100), f.stock(t, "p1"))
	_, err = f.sales.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
