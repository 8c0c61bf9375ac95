package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo persists financial summaries in PostgreSQL.
// (periode, periode_type) carries a unique constraint, so a concurrent
// aggregation run surfaces as domain.ErrDuplicate instead of a double row.
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository builds the adapter.
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

const summaryColumns = `
	id, periode, periode_type, chiffre_affaires, achats,
	marge_brute, frais_generaux, resultat_net, created_at, updated_at`

func scanSummary(row pgx.Row) (*entity.FinancialSummary, error) {
	var s entity.FinancialSummary
	err := row.Scan(
		&s.ID, &s.Period, &s.PeriodType, &s.Revenue, &s.Purchases,
		&s.GrossMargin, &s.Overhead, &s.NetResult, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Insert persists one summary row. Returns domain.ErrDuplicate when the
// period was already aggregated.
func (r *SummaryRepo) Insert(s *entity.FinancialSummary) error {
	query := `
		INSERT INTO resumes_comptables (` + summaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Period, s.PeriodType, s.Revenue, s.Purchases,
		s.GrossMargin, s.Overhead, s.NetResult, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

// GetByID returns the summary or nil when absent.
func (r *SummaryRepo) GetByID(id string) (*entity.FinancialSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM resumes_comptables WHERE id = $1`
	s, err := scanSummary(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return s, nil
}

// GetByPeriod returns the summary keyed by (period, periodType) or nil.
func (r *SummaryRepo) GetByPeriod(period time.Time, periodType string) (*entity.FinancialSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM resumes_comptables WHERE periode = $1 AND periode_type = $2`
	s, err := scanSummary(r.q.QueryRow(context.Background(), query, period, periodType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary by period: %w", err)
	}
	return s, nil
}

// List returns summaries matching the filter, oldest period first.
func (r *SummaryRepo) List(filter repository.SummaryFilter) ([]*entity.FinancialSummary, error) {
	var (
		conds []string
		args  []any
	)
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conds = append(conds, fmt.Sprintf("periode >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conds = append(conds, fmt.Sprintf("periode <= $%d", len(args)))
	}
	if filter.PeriodType != "" {
		args = append(args, filter.PeriodType)
		conds = append(conds, fmt.Sprintf("periode_type = $%d", len(args)))
	}

	query := `SELECT ` + summaryColumns + ` FROM resumes_comptables`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY periode ASC, periode_type ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []*entity.FinancialSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateOverhead writes overhead and the recomputed net result; the
// aggregated columns never change after insertion.
func (r *SummaryRepo) UpdateOverhead(id string, overhead, netResult decimal.Decimal) error {
	query := `
		UPDATE resumes_comptables SET
			frais_generaux = $2, resultat_net = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, overhead, netResult)
	if err != nil {
		return fmt.Errorf("update summary overhead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a summary.
func (r *SummaryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM resumes_comptables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
