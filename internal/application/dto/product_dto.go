package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// ProductRequest body for POST/PUT /api/produits. The reference code and the
// stock fields are never taken from the request: the code is generated and
// stock belongs to the ledger engine.
type ProductRequest struct {
	Name         string          `json:"nomProduit" validate:"required"`
	Category     string          `json:"categorie,omitempty"`
	Description  string          `json:"description,omitempty"`
	PrixAchat    decimal.Decimal `json:"prixAchat"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaireHT"`
	Marge        decimal.Decimal `json:"margeDegagnante"`
	TVARate      decimal.Decimal `json:"tvaApplicable,omitempty"`
	StockMinimal int64           `json:"stockMinimal,omitempty" validate:"gte=0"`
	SeuilReappro int64           `json:"seuilReapprovisionnement,omitempty" validate:"gte=0"`
	SupplierID   string          `json:"fournisseurPrincipal,omitempty"`
	StockInitial int64           `json:"stockActuel,omitempty" validate:"gte=0"` // baseline stock, create only
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID           string          `json:"id"`
	Reference    string          `json:"referenceProduit"`
	Name         string          `json:"nomProduit"`
	Category     string          `json:"categorie,omitempty"`
	Description  string          `json:"description,omitempty"`
	PrixAchat    decimal.Decimal `json:"prixAchat"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaireHT"`
	Marge        decimal.Decimal `json:"margeDegagnante"`
	TVARate      decimal.Decimal `json:"tvaApplicable"`
	StockActuel  int64           `json:"stockActuel"`
	StockMinimal int64           `json:"stockMinimal"`
	SeuilReappro int64           `json:"seuilReapprovisionnement"`
	StockBefore  int64           `json:"stockAvantMouvement"`
	StockAfter   int64           `json:"stockApresMouvement"`
	SupplierID   string          `json:"fournisseurPrincipal,omitempty"`
}

// NewProductResponse maps the entity to its response shape.
func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Reference:    p.Reference,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		PrixAchat:    p.PrixAchat,
		PrixUnitaire: p.PrixUnitaireHT,
		Marge:        p.Marge,
		TVARate:      p.TVARate,
		StockActuel:  p.StockActuel,
		StockMinimal: p.StockMinimal,
		SeuilReappro: p.SeuilReappro,
		StockBefore:  p.StockAvantMouvement,
		StockAfter:   p.StockApresMouvement,
		SupplierID:   p.SupplierID,
	}
}
