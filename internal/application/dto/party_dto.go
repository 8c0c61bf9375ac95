package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// ClientRequest body for POST/PUT /api/clients. numeroClient is always
// generated server-side and ignored on input.
type ClientRequest struct {
	Name         string `json:"nomRaisonSociale" validate:"required"`
	Address      string `json:"adresse" validate:"required"`
	Phone        string `json:"telephone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Type         string `json:"typeClient,omitempty" validate:"omitempty,oneof=Particulier Entreprise Distributeur"`
	PaymentTerms string `json:"conditionsPaiement,omitempty"`
	SpecialTerms string `json:"remisesConditionsSpeciales,omitempty"`
}

// ClientResponse client in responses.
type ClientResponse struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numeroClient"`
	Name          string          `json:"nomRaisonSociale"`
	Address       string          `json:"adresse"`
	Phone         string          `json:"telephone,omitempty"`
	Email         string          `json:"email,omitempty"`
	RegisteredAt  time.Time       `json:"dateInscription"`
	Type          string          `json:"typeClient,omitempty"`
	PaymentTerms  string          `json:"conditionsPaiement,omitempty"`
	PurchaseTotal decimal.Decimal `json:"historiqueAchats"`
	SpecialTerms  string          `json:"remisesConditionsSpeciales,omitempty"`
}

// NewClientResponse maps the entity to its response shape.
func NewClientResponse(c *entity.Client) *ClientResponse {
	return &ClientResponse{
		ID:            c.ID,
		Numero:        c.Numero,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		RegisteredAt:  c.RegisteredAt,
		Type:          c.Type,
		PaymentTerms:  c.PaymentTerms,
		PurchaseTotal: c.PurchaseTotal,
		SpecialTerms:  c.SpecialTerms,
	}
}

// SupplierRequest body for POST/PUT /api/fournisseurs.
type SupplierRequest struct {
	Name         string `json:"nomRaisonSociale" validate:"required"`
	Address      string `json:"adresse" validate:"required"`
	Phone        string `json:"telephone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	ContactName  string `json:"nomContact,omitempty"`
	Type         string `json:"typeFournisseur,omitempty" validate:"omitempty,oneof=Produits 'Matières premières' Services"`
	PaymentDelay string `json:"delaiPaiement,omitempty"`
	PaymentMode  string `json:"modePaiement,omitempty" validate:"omitempty,oneof=Chèque Virement Espèces"`
	BankAccount  string `json:"compteBancaire,omitempty"`
	SpecialTerms string `json:"remisesConditionsSpeciales,omitempty"`
}

// SupplierResponse supplier in responses.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numeroFournisseur"`
	Name          string          `json:"nomRaisonSociale"`
	Address       string          `json:"adresse"`
	Phone         string          `json:"telephone,omitempty"`
	Email         string          `json:"email,omitempty"`
	RegisteredAt  time.Time       `json:"dateInscription"`
	ContactName   string          `json:"nomContact,omitempty"`
	Type          string          `json:"typeFournisseur,omitempty"`
	PaymentDelay  string          `json:"delaiPaiement,omitempty"`
	PaymentMode   string          `json:"modePaiement,omitempty"`
	BankAccount   string          `json:"compteBancaire,omitempty"`
	PurchaseTotal decimal.Decimal `json:"historiqueAchats"`
	SpecialTerms  string          `json:"remisesConditionsSpeciales,omitempty"`
}

// NewSupplierResponse maps the entity to its response shape.
func NewSupplierResponse(s *entity.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		Numero:        s.Numero,
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		RegisteredAt:  s.RegisteredAt,
		ContactName:   s.ContactName,
		Type:          s.Type,
		PaymentDelay:  s.PaymentDelay,
		PaymentMode:   s.PaymentMode,
		BankAccount:   s.BankAccount,
		PurchaseTotal: s.PurchaseTotal,
		SpecialTerms:  s.SpecialTerms,
	}
}
