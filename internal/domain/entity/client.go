package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client types.
const (
	ClientTypeParticulier  = "Particulier"
	ClientTypeEntreprise   = "Entreprise"
	ClientTypeDistributeur = "Distributeur"
)

// Client is the counterparty of sales invoices.
type Client struct {
	ID            string
	Numero        string // C##### code, generated, unique
	Name          string // nomRaisonSociale
	Address       string
	Phone         string
	Email         string
	RegisteredAt  time.Time
	Type          string // Particulier, Entreprise, Distributeur
	PaymentTerms  string
	PurchaseTotal decimal.Decimal // historiqueAchats
	SpecialTerms  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
