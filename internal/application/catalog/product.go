// Package catalog manages products, clients and suppliers. Catalog edits
// never touch product stock; that path belongs to the ledger engine.
package catalog

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var validate = validator.New()

// ProductUseCase manages the product catalog.
type ProductUseCase struct {
	products  repository.ProductRepository
	sequences *sequence.Generator
}

// NewProductUseCase builds the use case.
func NewProductUseCase(products repository.ProductRepository, sequences *sequence.Generator) *ProductUseCase {
	return &ProductUseCase{products: products, sequences: sequences}
}

// checkPricing enforces the catalog pricing rules: cost price > 0,
// unit price > 0 and >= cost price, margin >= 0.
func checkPricing(in dto.ProductRequest) error {
	if !in.PrixAchat.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if !in.PrixUnitaire.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.PrixUnitaire.LessThan(in.PrixAchat) {
		return domain.ErrInvalidInput
	}
	if in.Marge.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create persists a product with a generated P##### reference. The initial
// stock is the baseline every later movement is applied on top of.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := checkPricing(in); err != nil {
		return nil, err
	}

	reference, err := uc.sequences.Next(sequence.PrefixProduct)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		Reference:      reference,
		Name:           in.Name,
		Category:       in.Category,
		Description:    in.Description,
		PrixAchat:      in.PrixAchat,
		PrixUnitaireHT: in.PrixUnitaire,
		Marge:          in.Marge,
		TVARate:        in.TVARate,
		StockActuel:    in.StockInitial,
		StockMinimal:   in.StockMinimal,
		SeuilReappro:   in.SeuilReappro,
		SupplierID:     in.SupplierID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}

// Update edits catalog fields. Reference and stock are immutable here.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := checkPricing(in); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.Name = in.Name
	p.Category = in.Category
	p.Description = in.Description
	p.PrixAchat = in.PrixAchat
	p.PrixUnitaireHT = in.PrixUnitaire
	p.Marge = in.Marge
	p.TVARate = in.TVARate
	p.StockMinimal = in.StockMinimal
	p.SeuilReappro = in.SeuilReappro
	p.SupplierID = in.SupplierID
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p), nil
}

// List returns the whole catalog.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// Delete removes a product.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}
