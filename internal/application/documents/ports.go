package documents

import (
	"context"

	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// TxRunner runs a function inside a database transaction, handing it
// repositories bound to that transaction. The stock reconciliation, the
// sequence counter advance and the document write commit or abort together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SalesInvoiceRepository,
		purchases repository.PurchaseInvoiceRepository,
		exits repository.ExitNoteRepository,
		sequences repository.SequenceRepository,
	) error) error
}
