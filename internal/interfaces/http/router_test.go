package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/accounting"
	"github.com/sbkgestion/stock-api/internal/application/catalog"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/infrastructure/memory"
	httpRouter "github.com/sbkgestion/stock-api/internal/interfaces/http"
	"github.com/sbkgestion/stock-api/pkg/logger"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)
	codes := sequence.NewGenerator(store.Sequences())
	engine := ledger.NewEngine()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         catalog.NewProductUseCase(store.Products(), codes),
		ClientUC:          catalog.NewClientUseCase(store.Clients(), codes),
		SupplierUC:        catalog.NewSupplierUseCase(store.Suppliers(), codes),
		SalesInvoiceUC:    documents.NewSalesInvoiceUseCase(txRunner, engine, store.Clients(), store.Products(), store.SalesInvoices()),
		PurchaseInvoiceUC: documents.NewPurchaseInvoiceUseCase(txRunner, engine, store.Suppliers(), store.Products(), store.PurchaseInvoices()),
		ExitNoteUC:        documents.NewExitNoteUseCase(txRunner, engine, store.Products(), store.ExitNotes()),
		RollupUC:          accounting.NewRollupUseCase(store.Summaries(), store.SalesInvoices(), store.PurchaseInvoices(), log),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func createProduct(t *testing.T, app *fiber.App, stock int64) string {
	t.Helper()
	status, body := doJSON(t, app, "POST", "/api/produits", map[string]any{
		"nomProduit":     "ciment 25kg",
		"prixAchat":      5,
		"prixUnitaireHT": 8,
		"margeDegagnante": 3,
		"tvaApplicable":  0.19,
		"stockActuel":    stock,
	})
	require.Equal(t, fiber.StatusCreated, status, "create product: %v", body)
	return body["id"].(string)
}

func createClient(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, "POST", "/api/clients", map[string]any{
		"nomRaisonSociale": "Entreprise Ben Salah",
		"adresse":          "Zone industrielle, Sfax",
		"typeClient":       "Entreprise",
	})
	require.Equal(t, fiber.StatusCreated, status, "create client: %v", body)
	return body["id"].(string)
}

func TestProductEndpoints_CreateAndGet(t *testing.T) {
	app := newApp(t)

	id := createProduct(t, app, 100)

	status, body := doJSON(t, app, "GET", "/api/produits/"+id, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "P00001", body["referenceProduit"])
	assert.Equal(t, float64(100), body["stockActuel"])
}

func TestProductEndpoints_NotFound(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, "GET", "/api/produits/missing", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestProductEndpoints_ValidationError(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, "POST", "/api/produits", map[string]any{
		"nomProduit": "gratuit",
		"prixAchat":  0,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestSalesInvoiceEndpoints_FullCycle(t *testing.T) {
	app := newApp(t)
	productID := createProduct(t, app, 100)
	clientID := createClient(t, app)

	status, invoice := doJSON(t, app, "POST", "/api/factures", map[string]any{
		"client":      clientID,
		"typeFacture": "Client",
		"liste": []map[string]any{
			{"produit": productID, "quantite": 10},
		},
	})
	require.Equal(t, fiber.StatusCreated, status, "create invoice: %v", invoice)
	assert.Equal(t, "F00001", invoice["numeroFacture"])
	assert.Equal(t, "En attente", invoice["statut"])

	_, product := doJSON(t, app, "GET", "/api/produits/"+productID, nil)
	assert.Equal(t, float64(90), product["stockActuel"], "the sale consumed 10 units")

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/factures/%s", invoice["id"]), nil)
	require.Equal(t, fiber.StatusOK, status)

	_, product = doJSON(t, app, "GET", "/api/produits/"+productID, nil)
	assert.Equal(t, float64(100), product["stockActuel"], "deletion restored the stock")
}

func TestSalesInvoiceEndpoints_InsufficientStockConflict(t *testing.T) {
	app := newApp(t)
	productID := createProduct(t, app, 5)
	clientID := createClient(t, app)

	status, body := doJSON(t, app, "POST", "/api/factures", map[string]any{
		"client":      clientID,
		"typeFacture": "Client",
		"liste": []map[string]any{
			{"produit": productID, "quantite": 10},
		},
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestSummaryEndpoints_GenerateAndList(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, "POST", "/api/resumes-comptables", map[string]any{
		"fromYear": 2023,
		"toYear":   2023,
	})
	require.Equal(t, fiber.StatusCreated, status, "generate: %v", body)

	req := httptest.NewRequest("GET", "/api/resumes-comptables?periodeType=quarter", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.Len(t, rows, 4, "one row per quarter of 2023")
}
