package postgres

import (
	"context"
	"fmt"

	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo per-prefix document counters over PostgreSQL (pool or tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter. Pass pool or tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next advances the counter of a prefix and returns the new value in a single
// atomic statement. There is no find-max scan and no read/write gap, so two
// concurrent callers always get distinct, increasing values.
func (r *SequenceRepo) Next(prefix string) (int64, error) {
	query := `
		INSERT INTO document_sequences (prefix, last_value)
		VALUES ($1, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
