package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice settlement status. A free attribute, not a tracked state machine.
const (
	StatusEnAttente          = "En attente"
	StatusPartiellementPayee = "Partiellement payée"
	StatusPayee              = "Payée"
)

// Payment modes.
const (
	PaymentCheque   = "Chèque"
	PaymentVirement = "Virement"
	PaymentEspeces  = "Espèces"
	PaymentTraite   = "Traite"
)

// Sales invoice types (typeFacture).
const (
	FactureTypeBL        = "BL"
	FactureTypeClient    = "Client"
	FactureTypeLivraison = "Bonde de Livraison"
)

// SalesInvoice decreases product stock. Numero is immutable after creation.
type SalesInvoice struct {
	ID          string
	Numero      string // F##### code, generated, unique
	Date        time.Time
	ClientID    string
	Type        string // BL, Client, Bonde de Livraison
	AmountHT    decimal.Decimal
	TVA         decimal.Decimal
	AmountTTC   decimal.Decimal
	Remise      decimal.Decimal
	DueDate     *time.Time
	PaymentMode string
	SettledAt   *time.Time
	Status      string // En attente, Partiellement payée, Payée
	Lines       []DocumentLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
