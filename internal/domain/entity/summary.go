package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary period types.
const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// FinancialSummary is one rollup row, unique per (Period, PeriodType).
// Created once by the aggregator; only Overhead and NetResult mutate afterwards.
type FinancialSummary struct {
	ID          string
	Period      time.Time // period start
	PeriodType  string    // month, quarter, year
	Revenue     decimal.Decimal
	Purchases   decimal.Decimal
	GrossMargin decimal.Decimal // Revenue - Purchases
	Overhead    decimal.Decimal // fraisGeneraux, default 0
	NetResult   decimal.Decimal // GrossMargin - Overhead
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
