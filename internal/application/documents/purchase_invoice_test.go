package documents_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/domain"
)

func purchaseRequest(supplierID string, lines ...dto.LineRequest) dto.PurchaseInvoiceRequest {
	return dto.PurchaseInvoiceRequest{
		SupplierID: supplierID,
		Lines:      lines,
	}
}

func TestPurchaseInvoiceCreate_IncrementsStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedSupplier(t, "s1")

	out, err := f.purchase.Create(context.Background(), purchaseRequest("s1", dto.LineRequest{ProductID: "p1", Quantity: 20}))
	require.NoError(t, err)

	assert.Equal(t, "FA00001", out.Numero)
	assert.Equal(t, int64(120), f.stock(t, "p1"))

	// cost price 5 × 20 = 100 HT, 19% VAT = 19
	assert.True(t, decimal.NewFromInt(100).Equal(out.AmountHT), "purchase totals use the cost price, got %s", out.AmountHT)
	assert.True(t, decimal.NewFromInt(19).Equal(out.TVA), "TVA, got %s", out.TVA)
	assert.True(t, decimal.NewFromInt(119).Equal(out.AmountTTC), "TTC, got %s", out.AmountTTC)

	require.NotNil(t, out.Supplier)
	assert.Equal(t, "FOU00001", out.Supplier.Numero)
}

func TestPurchaseInvoiceCreate_UnknownSupplier(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)

	_, err := f.purchase.Create(context.Background(), purchaseRequest("missing", dto.LineRequest{ProductID: "p1", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseInvoiceUpdate_ReducingReceiptBelowConsumptionFails(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 0)
	f.seedSupplier(t, "s1")
	f.seedClient(t, "c1")
	ctx := context.Background()

	received, err := f.purchase.Create(ctx, purchaseRequest("s1", dto.LineRequest{ProductID: "p1", Quantity: 20}))
	require.NoError(t, err)
	require.Equal(t, int64(20), f.stock(t, "p1"))

	// a sale consumes 15 of the 20 received
	_, err = f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 15}))
	require.NoError(t, err)
	require.Equal(t, int64(5), f.stock(t, "p1"))

	// shrinking the receipt to 10 would leave stock at -5
	_, err = f.purchase.Update(ctx, received.ID, purchaseRequest("s1", dto.LineRequest{ProductID: "p1", Quantity: 10}))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stock(t, "p1"))
}

func TestPurchaseInvoiceDelete_TakesStockBack(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100)
	f.seedSupplier(t, "s1")
	ctx := context.Background()

	created, err := f.purchase.Create(ctx, purchaseRequest("s1", dto.LineRequest{ProductID: "p1", Quantity: 20}))
	require.NoError(t, err)
	require.Equal(t, int64(120), f.stock(t, "p1"))

	require.NoError(t, f.purchase.Delete(ctx, created.ID))

	assert.Equal(t, int64(100), f.stock(t, "p1"))
}

func TestPurchaseInvoiceDelete_FailsWhenStockAlreadySold(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 0)
	f.seedSupplier(t, "s1")
	f.seedClient(t, "c1")
	ctx := context.Background()

	received, err := f.purchase.Create(ctx, purchaseRequest("s1", dto.LineRequest{ProductID: "p1", Quantity: 20}))
	require.NoError(t, err)
	_, err = f.sales.Create(ctx, salesRequest("c1", dto.LineRequest{ProductID: "p1", Quantity: 15}))
	require.NoError(t, err)

	err = f.purchase.Delete(ctx, received.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stock(t, "p1"))
	got, err := f.purchase.GetByID(ctx, received.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "the invoice survives a rejected deletion")
}
