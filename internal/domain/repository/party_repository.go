package repository

import "github.com/sbkgestion/stock-api/internal/domain/entity"

// ClientRepository is the persistence port for Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List() ([]*entity.Client, error)
	Delete(id string) error
}

// SupplierRepository is the persistence port for Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Delete(id string) error
}
