package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// GenerateSummariesRequest body for POST /api/resumes-comptables.
// Zero years default to the configured start year and the current year.
type GenerateSummariesRequest struct {
	FromYear int `json:"fromYear,omitempty" validate:"omitempty,gte=2000"`
	ToYear   int `json:"toYear,omitempty" validate:"omitempty,gte=2000"`
}

// UpdateOverheadRequest body for PUT /api/resumes-comptables/:id.
type UpdateOverheadRequest struct {
	Overhead decimal.Decimal `json:"fraisGeneraux"`
}

// SummaryResponse one financial summary row.
type SummaryResponse struct {
	ID          string          `json:"id"`
	Period      time.Time       `json:"periode"`
	PeriodType  string          `json:"periodeType"`
	Revenue     decimal.Decimal `json:"chiffreAffaires"`
	Purchases   decimal.Decimal `json:"achats"`
	GrossMargin decimal.Decimal `json:"margeBrute"`
	Overhead    decimal.Decimal `json:"fraisGeneraux"`
	NetResult   decimal.Decimal `json:"resultatNet"`
}

// NewSummaryResponse maps the entity to its response shape.
func NewSummaryResponse(s *entity.FinancialSummary) *SummaryResponse {
	return &SummaryResponse{
		ID:          s.ID,
		Period:      s.Period,
		PeriodType:  s.PeriodType,
		Revenue:     s.Revenue,
		Purchases:   s.Purchases,
		GrossMargin: s.GrossMargin,
		Overhead:    s.Overhead,
		NetResult:   s.NetResult,
	}
}
