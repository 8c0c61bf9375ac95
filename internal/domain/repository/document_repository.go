package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// SalesInvoiceRepository is the persistence port for sales invoices.
// Create and Update persist header and lines together.
type SalesInvoiceRepository interface {
	Create(inv *entity.SalesInvoice) error
	GetByID(id string) (*entity.SalesInvoice, error)
	Update(inv *entity.SalesInvoice) error
	List() ([]*entity.SalesInvoice, error)
	Delete(id string) error
	// SumAmountHTBetween totals montant HT of invoices dated in [from, to]
	// (rollup input; zero when the period is empty).
	SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error)
}

// PurchaseInvoiceRepository is the persistence port for purchase invoices.
type PurchaseInvoiceRepository interface {
	Create(inv *entity.PurchaseInvoice) error
	GetByID(id string) (*entity.PurchaseInvoice, error)
	Update(inv *entity.PurchaseInvoice) error
	List() ([]*entity.PurchaseInvoice, error)
	Delete(id string) error
	SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error)
}

// ExitNoteRepository is the persistence port for stock-exit notes.
type ExitNoteRepository interface {
	Create(note *entity.ExitNote) error
	GetByID(id string) (*entity.ExitNote, error)
	Update(note *entity.ExitNote) error
	List() ([]*entity.ExitNote, error)
	Delete(id string) error
}
