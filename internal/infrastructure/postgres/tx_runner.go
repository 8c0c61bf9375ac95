package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// Ensure TxRunner implements documents.TxRunner.
var _ documents.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction with repositories
// bound to it. Document mutations (stock reconciliation + sequence advance +
// document write) commit or abort as one unit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with tx-bound repos and commits, or
// rolls back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SalesInvoiceRepository,
	purchases repository.PurchaseInvoiceRepository,
	exits repository.ExitNoteRepository,
	sequences repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := NewProductRepository(tx)
	sales := NewSalesInvoiceRepository(tx)
	purchases := NewPurchaseInvoiceRepository(tx)
	exits := NewExitNoteRepository(tx)
	sequences := NewSequenceRepository(tx)

	if err := fn(products, sales, purchases, exits, sequences); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
