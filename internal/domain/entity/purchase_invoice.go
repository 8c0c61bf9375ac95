package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice increases product stock. Numero is immutable after creation.
type PurchaseInvoice struct {
	ID          string
	Numero      string // FA##### code, generated, unique
	Date        time.Time
	SupplierID  string
	AmountHT    decimal.Decimal
	TVA         decimal.Decimal
	AmountTTC   decimal.Decimal
	DueDate     *time.Time
	PaymentMode string
	SettledAt   *time.Time
	Status      string // En attente, Partiellement payée, Payée
	Lines       []DocumentLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
