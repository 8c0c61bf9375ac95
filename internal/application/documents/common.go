package documents

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var validate = validator.New()

// loadLineProducts checks every line references an existing product with a
// positive integer quantity and returns the products keyed by ID.
// Read-only pre-validation; stock sufficiency is the ledger engine's job.
func loadLineProducts(products repository.ProductRepository, lines []dto.LineRequest) (map[string]*entity.Product, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	byID := make(map[string]*entity.Product, len(lines))
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		if _, ok := byID[l.ProductID]; ok {
			continue
		}
		p, err := products.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		byID[l.ProductID] = p
	}
	return byID, nil
}

// resolveLines re-reads the referenced products so responses carry their
// post-movement state, mirroring the populated reads of the HTTP contract.
func resolveLines(products repository.ProductRepository, lines []entity.DocumentLine) ([]dto.LineResponse, error) {
	out := make([]dto.LineResponse, 0, len(lines))
	for _, l := range lines {
		p, err := products.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		var resolved *dto.ProductResponse
		if p != nil {
			resolved = dto.NewProductResponse(p)
		}
		out = append(out, dto.LineResponse{Product: resolved, Quantity: l.Quantity})
	}
	return out, nil
}

// taxRate normalizes a stored VAT rate: values above 1 are percentages.
func taxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}

// invoiceTotals computes montant HT, TVA and TTC from the lines and the given
// per-product unit price (sale price for sales invoices, cost price for
// purchase invoices). remise is an absolute discount applied on the TTC.
func invoiceTotals(byID map[string]*entity.Product, lines []dto.LineRequest, priceOf func(*entity.Product) decimal.Decimal, remise decimal.Decimal) (ht, tva, ttc decimal.Decimal) {
	for _, l := range lines {
		p := byID[l.ProductID]
		lineHT := priceOf(p).Mul(decimal.NewFromInt(l.Quantity))
		ht = ht.Add(lineHT)
		tva = tva.Add(lineHT.Mul(taxRate(p.TVARate)))
	}
	ttc = ht.Add(tva).Sub(remise)
	return ht, tva, ttc
}

// defaultStatus returns the settlement status or its default.
func defaultStatus(s string) string {
	if s == "" {
		return entity.StatusEnAttente
	}
	return s
}
