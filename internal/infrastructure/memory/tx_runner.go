package memory

import (
	"context"

	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var _ documents.TxRunner = (*TxRunner)(nil)

// TxRunner gives callbacks all-or-nothing semantics over the store: it holds
// the store lock for the whole callback, snapshots the dataset first and
// swaps the snapshot back in when the callback fails.
type TxRunner struct {
	st *Store
}

// NewTxRunner builds the runner over a store.
func NewTxRunner(st *Store) *TxRunner {
	return &TxRunner{st: st}
}

// Run executes fn with repositories bound to the locked dataset.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SalesInvoiceRepository,
	purchases repository.PurchaseInvoiceRepository,
	exits repository.ExitNoteRepository,
	sequences repository.SequenceRepository,
) error) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	snapshot := r.st.s.clone()
	v := txView{s: r.st.s}

	err := fn(
		&ProductRepo{v: v},
		&SalesInvoiceRepo{v: v},
		&PurchaseInvoiceRepo{v: v},
		&ExitNoteRepo{v: v},
		&SequenceRepo{v: v},
	)
	if err != nil {
		r.st.s = snapshot
		return err
	}
	return nil
}
