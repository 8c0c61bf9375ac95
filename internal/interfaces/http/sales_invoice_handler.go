package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/dto"
)

// SalesInvoiceHandler serves the sales invoice endpoints. Every mutation goes
// through the stock ledger, so a stock shortfall surfaces as 409 here.
type SalesInvoiceHandler struct {
	uc *documents.SalesInvoiceUseCase
}

// NewSalesInvoiceHandler builds the handler.
func NewSalesInvoiceHandler(uc *documents.SalesInvoiceUseCase) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{uc: uc}
}

// Create issues a sales invoice and decrements stock.
// POST /api/factures
func (h *SalesInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns every sales invoice.
// GET /api/factures
func (h *SalesInvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one sales invoice.
// GET /api/factures/:id
func (h *SalesInvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update replaces the line set and header fields, reconciling stock by the
// net difference per product. The numero is immutable.
// PUT /api/factures/:id
func (h *SalesInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.SalesInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes the invoice and restores the stock it consumed.
// DELETE /api/factures/:id
func (h *SalesInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "facture supprimée"})
}
