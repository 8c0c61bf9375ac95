package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier types.
const (
	SupplierTypeProduits  = "Produits"
	SupplierTypeMatieres  = "Matières premières"
	SupplierTypeServices  = "Services"
)

// Supplier is the counterparty of purchase invoices.
type Supplier struct {
	ID            string
	Numero        string // FOU##### code, generated, unique
	Name          string // nomRaisonSociale
	Address       string
	Phone         string
	Email         string
	RegisteredAt  time.Time
	ContactName   string
	Type          string // Produits, Matières premières, Services
	PaymentDelay  string
	PaymentMode   string // Chèque, Virement, Espèces
	BankAccount   string
	PurchaseTotal decimal.Decimal
	SpecialTerms  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
