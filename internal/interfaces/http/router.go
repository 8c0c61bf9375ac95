// Package http wires the fiber routes to the use cases.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sbkgestion/stock-api/internal/application/accounting"
	"github.com/sbkgestion/stock-api/internal/application/catalog"
	"github.com/sbkgestion/stock-api/internal/application/documents"
)

// RouterDeps carries the use cases the router exposes.
type RouterDeps struct {
	ProductUC         *catalog.ProductUseCase
	ClientUC          *catalog.ClientUseCase
	SupplierUC        *catalog.SupplierUseCase
	SalesInvoiceUC    *documents.SalesInvoiceUseCase
	PurchaseInvoiceUC *documents.PurchaseInvoiceUseCase
	ExitNoteUC        *documents.ExitNoteUseCase
	RollupUC          *accounting.RollupUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/produits")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	suppliers := api.Group("/fournisseurs")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	sales := api.Group("/factures")
	salesHandler := NewSalesInvoiceHandler(deps.SalesInvoiceUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)

	purchases := api.Group("/factureAchats")
	purchaseHandler := NewPurchaseInvoiceHandler(deps.PurchaseInvoiceUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	exits := api.Group("/bons-de-sortie")
	exitHandler := NewExitNoteHandler(deps.ExitNoteUC)
	exits.Post("/", exitHandler.Create)
	exits.Get("/", exitHandler.List)
	exits.Get("/:id", exitHandler.GetByID)
	exits.Put("/:id", exitHandler.Update)
	exits.Delete("/:id", exitHandler.Delete)

	summaries := api.Group("/resumes-comptables")
	summaryHandler := NewSummaryHandler(deps.RollupUC)
	summaries.Post("/", summaryHandler.Generate)
	summaries.Get("/", summaryHandler.List)
	summaries.Put("/:id", summaryHandler.UpdateOverhead)
	summaries.Delete("/:id", summaryHandler.Delete)
}
