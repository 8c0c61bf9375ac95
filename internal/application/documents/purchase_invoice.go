package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// PurchaseInvoiceUseCase orchestrates purchase invoices. Same shape as the
// sales use case but with the supplier registry and incoming movements.
type PurchaseInvoiceUseCase struct {
	txRunner  TxRunner
	engine    *ledger.Engine
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	purchases repository.PurchaseInvoiceRepository
}

// NewPurchaseInvoiceUseCase builds the use case.
func NewPurchaseInvoiceUseCase(
	txRunner TxRunner,
	engine *ledger.Engine,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	purchases repository.PurchaseInvoiceRepository,
) *PurchaseInvoiceUseCase {
	return &PurchaseInvoiceUseCase{
		txRunner:  txRunner,
		engine:    engine,
		suppliers: suppliers,
		products:  products,
		purchases: purchases,
	}
}

// Create validates the request, applies the incoming movements and persists
// the invoice with a freshly issued FA##### code, all atomically.
func (uc *PurchaseInvoiceUseCase) Create(ctx context.Context, in dto.PurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	byID, err := loadLineProducts(uc.products, in.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	ht, tva, ttc := invoiceTotals(byID, in.Lines, costPrice, decimal.Zero)

	inv := &entity.PurchaseInvoice{
		ID:          uuid.New().String(),
		Date:        date,
		SupplierID:  in.SupplierID,
		AmountHT:    ht,
		TVA:         tva,
		AmountTTC:   ttc,
		DueDate:     in.DueDate,
		PaymentMode: in.PaymentMode,
		SettledAt:   in.SettledAt,
		Status:      defaultStatus(in.Status),
		Lines:       dto.ToEntityLines(in.Lines),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		purchases repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		sequences repository.SequenceRepository,
	) error {
		if err := uc.engine.ReplaceLines(products, entity.KindPurchaseInvoice, nil, inv.Lines); err != nil {
			return err
		}
		numero, err := sequence.NextWith(sequences, sequence.PrefixPurchaseInvoice)
		if err != nil {
			return err
		}
		inv.Numero = numero
		return purchases.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv)
}

// Update replaces the line set and mutable header fields; numero immutable.
// Reversal here subtracts the previously purchased quantities, so shrinking a
// purchase below what has since been sold fails with insufficient stock.
func (uc *PurchaseInvoiceUseCase) Update(ctx context.Context, id string, in dto.PurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	byID, err := loadLineProducts(uc.products, in.Lines)
	if err != nil {
		return nil, err
	}

	var inv *entity.PurchaseInvoice
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		purchases repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := purchases.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		newLines := dto.ToEntityLines(in.Lines)
		if err := uc.engine.ReplaceLines(products, entity.KindPurchaseInvoice, existing.Lines, newLines); err != nil {
			return err
		}

		ht, tva, ttc := invoiceTotals(byID, in.Lines, costPrice, decimal.Zero)
		existing.SupplierID = in.SupplierID
		if in.Date != nil {
			existing.Date = *in.Date
		}
		existing.AmountHT = ht
		existing.TVA = tva
		existing.AmountTTC = ttc
		existing.DueDate = in.DueDate
		existing.PaymentMode = in.PaymentMode
		existing.SettledAt = in.SettledAt
		existing.Status = defaultStatus(in.Status)
		existing.Lines = newLines
		existing.UpdatedAt = time.Now()
		inv = existing
		return purchases.Update(existing)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv)
}

// Delete reverses the invoice's incoming movements and removes it.
func (uc *PurchaseInvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		purchases repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := purchases.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := uc.engine.ReplaceLines(products, entity.KindPurchaseInvoice, existing.Lines, nil); err != nil {
			return err
		}
		return purchases.Delete(id)
	})
}

// GetByID returns one invoice with supplier and products resolved.
func (uc *PurchaseInvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseInvoiceResponse, error) {
	inv, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv)
}

// List returns every purchase invoice with references resolved.
func (uc *PurchaseInvoiceUseCase) List(ctx context.Context) ([]*dto.PurchaseInvoiceResponse, error) {
	invs, err := uc.purchases.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseInvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		resp, err := uc.toResponse(inv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func costPrice(p *entity.Product) decimal.Decimal { return p.PrixAchat }

func (uc *PurchaseInvoiceUseCase) toResponse(inv *entity.PurchaseInvoice) (*dto.PurchaseInvoiceResponse, error) {
	lines, err := resolveLines(uc.products, inv.Lines)
	if err != nil {
		return nil, err
	}
	var supplier *dto.SupplierResponse
	if s, err := uc.suppliers.GetByID(inv.SupplierID); err == nil && s != nil {
		supplier = dto.NewSupplierResponse(s)
	}
	return &dto.PurchaseInvoiceResponse{
		ID:          inv.ID,
		Numero:      inv.Numero,
		Date:        inv.Date,
		Supplier:    supplier,
		AmountHT:    inv.AmountHT,
		TVA:         inv.TVA,
		AmountTTC:   inv.AmountTTC,
		DueDate:     inv.DueDate,
		PaymentMode: inv.PaymentMode,
		SettledAt:   inv.SettledAt,
		Status:      inv.Status,
		Lines:       lines,
	}, nil
}
