package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/dto"
)

// PurchaseInvoiceHandler serves the purchase invoice endpoints.
type PurchaseInvoiceHandler struct {
	uc *documents.PurchaseInvoiceUseCase
}

// NewPurchaseInvoiceHandler builds the handler.
func NewPurchaseInvoiceHandler(uc *documents.PurchaseInvoiceUseCase) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{uc: uc}
}

// Create registers a purchase invoice and increments stock.
// POST /api/factureAchats
func (h *PurchaseInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns every purchase invoice.
// GET /api/factureAchats
func (h *PurchaseInvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one purchase invoice.
// GET /api/factureAchats/:id
func (h *PurchaseInvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update replaces the line set and header fields. Removing received quantity
// that was already sold fails with 409 rather than leaving stock negative.
// PUT /api/factureAchats/:id
func (h *PurchaseInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes the invoice and takes back the stock it brought in.
// DELETE /api/factureAchats/:id
func (h *PurchaseInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "facture d'achat supprimée"})
}
