package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// SummaryFilter narrows List results. Zero values mean "no filter".
type SummaryFilter struct {
	From       time.Time
	To         time.Time
	PeriodType string
}

// SummaryRepository is the persistence port for financial summaries.
// (Period, PeriodType) carries a uniqueness constraint; Insert returns
// domain.ErrDuplicate when a concurrent writer already created the row.
type SummaryRepository interface {
	Insert(s *entity.FinancialSummary) error
	GetByID(id string) (*entity.FinancialSummary, error)
	GetByPeriod(period time.Time, periodType string) (*entity.FinancialSummary, error)
	List(filter SummaryFilter) ([]*entity.FinancialSummary, error)
	// UpdateOverhead writes overhead and the recomputed net result only.
	UpdateOverhead(id string, overhead, netResult decimal.Decimal) error
	Delete(id string) error
}
