package repository

import "github.com/sbkgestion/stock-api/internal/domain/entity"

// ProductRepository is the persistence port for Product.
// ApplyMovement is the only write path for stock; Update covers catalog
// fields and never touches StockActuel.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate locks the product row (SELECT FOR UPDATE) so the ledger
	// engine can read-modify-write the stock without lost updates.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ApplyMovement writes the new stock and the before/after snapshot of the
	// movement that produced it.
	ApplyMovement(id string, newStock, before, after int64) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
