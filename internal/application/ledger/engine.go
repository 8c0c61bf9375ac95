// Package ledger applies stock movements of commercial documents to the
// product catalog. The engine runs inside a caller-provided transaction and
// is the only writer of Product.StockActuel.
package ledger

import (
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	domledger "github.com/sbkgestion/stock-api/internal/domain/ledger"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// Engine reconciles product stock when a document's line set changes.
type Engine struct{}

// NewEngine builds the engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ReplaceLines reverses the effect of oldLines and applies newLines as one
// net movement per product:
//
//	create: oldLines = nil, newLines = submitted lines
//	update: oldLines = committed lines, newLines = submitted lines
//	delete: oldLines = committed lines, newLines = nil
//
// Quantities are aggregated per product across each set before anything is
// validated, so repeated lines for one product cannot over-commit stock.
// Each touched product row is locked (FOR UPDATE) in sorted order, the
// resulting stock is validated against zero and written once, together with
// the before/after movement snapshot.
//
// products must be bound to the surrounding transaction: the first violation
// returns an error and the caller's rollback discards every delta already
// applied, so stock is never left half-updated.
func (e *Engine) ReplaceLines(products repository.ProductRepository, kind entity.DocumentKind, oldLines, newLines []entity.DocumentLine) error {
	deltas := domledger.NetDeltas(kind.Direction(), oldLines, newLines)
	if len(deltas) == 0 {
		return nil // no-op update: identical aggregated line sets
	}

	for _, productID := range domledger.ProductIDs(deltas) {
		product, err := products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := deltas[productID]
		newStock := product.StockActuel + delta
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if err := products.ApplyMovement(productID, newStock, product.StockActuel, newStock); err != nil {
			return err
		}
	}
	return nil
}
