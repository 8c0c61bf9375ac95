// Package accounting rolls invoice totals up into financial summaries,
// one row per (period, period type).
package accounting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/period"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
	"github.com/sbkgestion/stock-api/pkg/logger"
)

// DefaultStartYear is the first year scanned when the request gives none.
const DefaultStartYear = 2020

// RollupUseCase generates and maintains financial summaries. Generation is
// idempotent: periods that already have a row are skipped, so re-running the
// batch only fills the gaps.
type RollupUseCase struct {
	summaries repository.SummaryRepository
	sales     repository.SalesInvoiceRepository
	purchases repository.PurchaseInvoiceRepository
	log       *logger.Logger
}

// NewRollupUseCase builds the use case.
func NewRollupUseCase(
	summaries repository.SummaryRepository,
	sales repository.SalesInvoiceRepository,
	purchases repository.PurchaseInvoiceRepository,
	log *logger.Logger,
) *RollupUseCase {
	return &RollupUseCase{summaries: summaries, sales: sales, purchases: purchases, log: log}
}

// Generate scans every month and every quarter from fromYear through toYear
// and inserts the missing summary rows. Zero years default to
// DefaultStartYear..current year. Returns how many rows were inserted.
//
// A failure aborts the remaining batch; rows already inserted stay, so the
// next invocation resumes from whatever periods are still missing.
func (uc *RollupUseCase) Generate(ctx context.Context, fromYear, toYear int) (int, error) {
	if fromYear == 0 {
		fromYear = DefaultStartYear
	}
	if toYear == 0 {
		toYear = time.Now().Year()
	}
	if fromYear > toYear {
		return 0, domain.ErrInvalidInput
	}

	inserted := 0
	for year := fromYear; year <= toYear; year++ {
		for month := time.January; month <= time.December; month++ {
			ok, err := uc.generateOne(period.Month(year, month), entity.PeriodMonth)
			if err != nil {
				return inserted, err
			}
			if ok {
				inserted++
			}
		}
		for q := 1; q <= 4; q++ {
			ok, err := uc.generateOne(period.Quarter(year, q), entity.PeriodQuarter)
			if err != nil {
				return inserted, err
			}
			if ok {
				inserted++
			}
		}
	}
	uc.log.Info().Int("inserted", inserted).Int("from", fromYear).Int("to", toYear).
		Msg("financial summaries generated")
	return inserted, nil
}

// generateOne inserts the summary of one period unless it already exists.
// A concurrent writer winning the insert is treated as an existing row.
func (uc *RollupUseCase) generateOne(r period.Range, periodType string) (bool, error) {
	existing, err := uc.summaries.GetByPeriod(r.Start, periodType)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	revenue, err := uc.sales.SumAmountHTBetween(r.Start, r.End)
	if err != nil {
		return false, fmt.Errorf("sum sales %s: %w", r.Start.Format("2006-01"), err)
	}
	purchases, err := uc.purchases.SumAmountHTBetween(r.Start, r.End)
	if err != nil {
		return false, fmt.Errorf("sum purchases %s: %w", r.Start.Format("2006-01"), err)
	}

	grossMargin := revenue.Sub(purchases)
	now := time.Now()
	s := &entity.FinancialSummary{
		ID:          uuid.New().String(),
		Period:      r.Start,
		PeriodType:  periodType,
		Revenue:     revenue,
		Purchases:   purchases,
		GrossMargin: grossMargin,
		Overhead:    decimal.Zero,
		NetResult:   grossMargin, // overhead starts at 0
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.summaries.Insert(s); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil // concurrent run won this period
		}
		return false, err
	}
	return true, nil
}

// UpdateOverhead sets the overhead of an existing row and recomputes
// netResult from the stored gross margin. Revenue and purchases are not
// re-aggregated: overhead correction is independent of the invoice totals.
func (uc *RollupUseCase) UpdateOverhead(ctx context.Context, id string, overhead decimal.Decimal) (*dto.SummaryResponse, error) {
	if overhead.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.summaries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	netResult := s.GrossMargin.Sub(overhead)
	if err := uc.summaries.UpdateOverhead(id, overhead, netResult); err != nil {
		return nil, err
	}
	s.Overhead = overhead
	s.NetResult = netResult
	return dto.NewSummaryResponse(s), nil
}

// List returns summaries matching the filter, ordered by period.
func (uc *RollupUseCase) List(ctx context.Context, filter repository.SummaryFilter) ([]*dto.SummaryResponse, error) {
	rows, err := uc.summaries.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.NewSummaryResponse(s))
	}
	return out, nil
}

// Delete removes a summary row.
func (uc *RollupUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.summaries.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.summaries.Delete(id)
}
