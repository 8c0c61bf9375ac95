package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// LineRequest one document line on input.
type LineRequest struct {
	ProductID string `json:"produit" validate:"required"`
	Quantity  int64  `json:"quantite" validate:"gte=1"`
}

// LineResponse one document line with the product resolved.
type LineResponse struct {
	Product  *ProductResponse `json:"produit"`
	Quantity int64            `json:"quantite"`
}

// SalesInvoiceRequest body for POST/PUT /api/factures. numeroFacture is
// generated on create and immutable on update. Monetary totals are computed
// from the lines and product prices, never taken from the request.
type SalesInvoiceRequest struct {
	ClientID    string          `json:"client" validate:"required"`
	Type        string          `json:"typeFacture" validate:"required,oneof=BL Client 'Bonde de Livraison'"`
	Date        *time.Time      `json:"dateFacturation,omitempty"`
	Remise      decimal.Decimal `json:"remise,omitempty"`
	DueDate     *time.Time      `json:"dateEcheance,omitempty"`
	PaymentMode string          `json:"modePaiement,omitempty" validate:"omitempty,oneof=Chèque Virement Espèces Traite"`
	SettledAt   *time.Time      `json:"dateReglement,omitempty"`
	Status      string          `json:"statut,omitempty" validate:"omitempty,oneof='En attente' 'Partiellement payée' Payée"`
	Lines       []LineRequest   `json:"liste" validate:"required,min=1,dive"`
}

// SalesInvoiceResponse invoice with client and products resolved.
type SalesInvoiceResponse struct {
	ID          string          `json:"id"`
	Numero      string          `json:"numeroFacture"`
	Date        time.Time       `json:"dateFacturation"`
	Client      *ClientResponse `json:"client"`
	Type        string          `json:"typeFacture"`
	AmountHT    decimal.Decimal `json:"montantHT"`
	TVA         decimal.Decimal `json:"tva"`
	AmountTTC   decimal.Decimal `json:"montantTTC"`
	Remise      decimal.Decimal `json:"remise"`
	DueDate     *time.Time      `json:"dateEcheance,omitempty"`
	PaymentMode string          `json:"modePaiement,omitempty"`
	SettledAt   *time.Time      `json:"dateReglement,omitempty"`
	Status      string          `json:"statut"`
	Lines       []LineResponse  `json:"liste"`
}

// PurchaseInvoiceRequest body for POST/PUT /api/factureAchats.
type PurchaseInvoiceRequest struct {
	SupplierID  string        `json:"fournisseur" validate:"required"`
	Date        *time.Time    `json:"dateFacturation,omitempty"`
	DueDate     *time.Time    `json:"dateEcheance,omitempty"`
	PaymentMode string        `json:"modePaiement,omitempty" validate:"omitempty,oneof=Chèque Virement Espèces Traite"`
	SettledAt   *time.Time    `json:"dateReglement,omitempty"`
	Status      string        `json:"statut,omitempty" validate:"omitempty,oneof='En attente' 'Partiellement payée' Payée"`
	Lines       []LineRequest `json:"liste" validate:"required,min=1,dive"`
}

// PurchaseInvoiceResponse purchase invoice with supplier and products resolved.
type PurchaseInvoiceResponse struct {
	ID          string            `json:"id"`
	Numero      string            `json:"numeroFacture"`
	Date        time.Time         `json:"dateFacturation"`
	Supplier    *SupplierResponse `json:"fournisseur"`
	AmountHT    decimal.Decimal   `json:"montantHT"`
	TVA         decimal.Decimal   `json:"tva"`
	AmountTTC   decimal.Decimal   `json:"montantTTC"`
	DueDate     *time.Time        `json:"dateEcheance,omitempty"`
	PaymentMode string            `json:"modePaiement,omitempty"`
	SettledAt   *time.Time        `json:"dateReglement,omitempty"`
	Status      string            `json:"statut"`
	Lines       []LineResponse    `json:"liste"`
}

// ExitNoteRequest body for POST/PUT /api/bons-de-sortie.
type ExitNoteRequest struct {
	Date        *time.Time    `json:"dateSortie,omitempty"`
	Reason      string        `json:"motifSortie,omitempty" validate:"omitempty,oneof=Vente Don Transfert 'Usage interne'"`
	Destination string        `json:"destination,omitempty"`
	VehicleReg  string        `json:"matriculeVehicule,omitempty"`
	DriverName  string        `json:"nomChauffeur,omitempty"`
	IssuedBy    string        `json:"responsableSortie,omitempty"`
	Lines       []LineRequest `json:"produits" validate:"required,min=1,dive"`
}

// ExitNoteResponse exit note with products resolved.
type ExitNoteResponse struct {
	ID          string         `json:"id"`
	Numero      string         `json:"numeroBonSortie"`
	Date        time.Time      `json:"dateSortie"`
	Reason      string         `json:"motifSortie,omitempty"`
	Destination string         `json:"destination,omitempty"`
	VehicleReg  string         `json:"matriculeVehicule,omitempty"`
	DriverName  string         `json:"nomChauffeur,omitempty"`
	IssuedBy    string         `json:"responsableSortie,omitempty"`
	StockBefore int64          `json:"stockAvantSortie"`
	StockAfter  int64          `json:"stockApresSortie"`
	Lines       []LineResponse `json:"produits"`
}

// ToEntityLines converts request lines to domain lines.
func ToEntityLines(lines []LineRequest) []entity.DocumentLine {
	out := make([]entity.DocumentLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.DocumentLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return out
}
