package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sbkgestion/stock-api/internal/application/accounting"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// SummaryHandler serves the financial summary endpoints.
type SummaryHandler struct {
	uc *accounting.RollupUseCase
}

// NewSummaryHandler builds the handler.
func NewSummaryHandler(uc *accounting.RollupUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Generate fills the missing monthly and quarterly summaries in the requested
// year span. Safe to call repeatedly.
// POST /api/resumes-comptables
func (h *SummaryHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateSummariesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	inserted, err := h.uc.Generate(c.Context(), in.FromYear, in.ToYear)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("%d résumés générés", inserted),
	})
}

// List returns summaries, optionally filtered by periodeType and a
// from/to date window (YYYY-MM-DD).
// GET /api/resumes-comptables
func (h *SummaryHandler) List(c *fiber.Ctx) error {
	filter := repository.SummaryFilter{PeriodType: c.Query("periodeType")}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre from invalide"})
		}
		filter.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre to invalide"})
		}
		filter.To = t
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateOverhead sets the overhead of one summary and recomputes its net
// result. The aggregated totals never change here.
// PUT /api/resumes-comptables/:id
func (h *SummaryHandler) UpdateOverhead(c *fiber.Ctx) error {
	var in dto.UpdateOverheadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateOverhead(c.Context(), c.Params("id"), in.Overhead)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete removes one summary row.
// DELETE /api/resumes-comptables/:id
func (h *SummaryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "résumé supprimé"})
}
