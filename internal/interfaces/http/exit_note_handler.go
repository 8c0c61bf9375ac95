package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/dto"
)

// ExitNoteHandler serves the stock-exit note endpoints.
type ExitNoteHandler struct {
	uc *documents.ExitNoteUseCase
}

// NewExitNoteHandler builds the handler.
func NewExitNoteHandler(uc *documents.ExitNoteUseCase) *ExitNoteHandler {
	return &ExitNoteHandler{uc: uc}
}

// Create registers an exit note and decrements stock.
// POST /api/bons-de-sortie
func (h *ExitNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.ExitNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns every exit note.
// GET /api/bons-de-sortie
func (h *ExitNoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one exit note.
// GET /api/bons-de-sortie/:id
func (h *ExitNoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update replaces the line set and metadata. The numero is immutable.
// PUT /api/bons-de-sortie/:id
func (h *ExitNoteHandler) Update(c *fiber.Ctx) error {
	var in dto.ExitNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes the note and restores the stock it released.
// DELETE /api/bons-de-sortie/:id
func (h *ExitNoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "bon de sortie supprimé"})
}
