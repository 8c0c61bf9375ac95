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

// SalesInvoiceUseCase orchestrates the lifecycle of sales invoices: input
// validation, stock reconciliation through the ledger engine, code issuance
// and persistence, one transaction per mutation.
type SalesInvoiceUseCase struct {
	txRunner TxRunner
	engine   *ledger.Engine
	clients  repository.ClientRepository
	products repository.ProductRepository
	sales    repository.SalesInvoiceRepository
}

// NewSalesInvoiceUseCase builds the use case.
func NewSalesInvoiceUseCase(
	txRunner TxRunner,
	engine *ledger.Engine,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	sales repository.SalesInvoiceRepository,
) *SalesInvoiceUseCase {
	return &SalesInvoiceUseCase{
		txRunner: txRunner,
		engine:   engine,
		clients:  clients,
		products: products,
		sales:    sales,
	}
}

// Create validates the request, applies the outgoing movements and persists
// the invoice with a freshly issued F##### code, all atomically.
func (uc *SalesInvoiceUseCase) Create(ctx context.Context, in dto.SalesInvoiceRequest) (*dto.SalesInvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
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
	ht, tva, ttc := invoiceTotals(byID, in.Lines, salePrice, in.Remise)

	inv := &entity.SalesInvoice{
		ID:          uuid.New().String(),
		Date:        date,
		ClientID:    in.ClientID,
		Type:        in.Type,
		AmountHT:    ht,
		TVA:         tva,
		AmountTTC:   ttc,
		Remise:      in.Remise,
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
		sales repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		sequences repository.SequenceRepository,
	) error {
		if err := uc.engine.ReplaceLines(products, entity.KindSalesInvoice, nil, inv.Lines); err != nil {
			return err
		}
		numero, err := sequence.NextWith(sequences, sequence.PrefixSalesInvoice)
		if err != nil {
			return err
		}
		inv.Numero = numero
		return sales.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv)
}

// Update replaces the line set (reversing the committed movements and
// applying the new ones as one net delta per product) and the mutable header
// fields. The numero is never reassigned.
func (uc *SalesInvoiceUseCase) Update(ctx context.Context, id string, in dto.SalesInvoiceRequest) (*dto.SalesInvoiceResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	byID, err := loadLineProducts(uc.products, in.Lines)
	if err != nil {
		return nil, err
	}

	var inv *entity.SalesInvoice
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		newLines := dto.ToEntityLines(in.Lines)
		if err := uc.engine.ReplaceLines(products, entity.KindSalesInvoice, existing.Lines, newLines); err != nil {
			return err
		}

		ht, tva, ttc := invoiceTotals(byID, in.Lines, salePrice, in.Remise)
		existing.ClientID = in.ClientID
		existing.Type = in.Type
		if in.Date != nil {
			existing.Date = *in.Date
		}
		existing.AmountHT = ht
		existing.TVA = tva
		existing.AmountTTC = ttc
		existing.Remise = in.Remise
		existing.DueDate = in.DueDate
		existing.PaymentMode = in.PaymentMode
		existing.SettledAt = in.SettledAt
		existing.Status = defaultStatus(in.Status)
		existing.Lines = newLines
		existing.UpdatedAt = time.Now()
		inv = existing
		return sales.Update(existing)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv)
}

// Delete reverses the invoice's movements and removes it.
func (uc *SalesInvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		_ repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := uc.engine.ReplaceLines(products, entity.KindSalesInvoice, existing.Lines, nil); err != nil {
			return err
		}
		return sales.Delete(id)
	})
}

// GetByID returns one invoice with client and products resolved.
func (uc *SalesInvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.SalesInvoiceResponse, error) {
	inv, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv)
}

// List returns every invoice with references resolved.
func (uc *SalesInvoiceUseCase) List(ctx context.Context) ([]*dto.SalesInvoiceResponse, error) {
	invs, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesInvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		resp, err := uc.toResponse(inv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func salePrice(p *entity.Product) decimal.Decimal { return p.PrixUnitaireHT }

func (uc *SalesInvoiceUseCase) toResponse(inv *entity.SalesInvoice) (*dto.SalesInvoiceResponse, error) {
	lines, err := resolveLines(uc.products, inv.Lines)
	if err != nil {
		return nil, err
	}
	var client *dto.ClientResponse
	if c, err := uc.clients.GetByID(inv.ClientID); err == nil && c != nil {
		client = dto.NewClientResponse(c)
	}
	return &dto.SalesInvoiceResponse{
		ID:          inv.ID,
		Numero:      inv.Numero,
		Date:        inv.Date,
		Client:      client,
		Type:        inv.Type,
		AmountHT:    inv.AmountHT,
		TVA:         inv.TVA,
		AmountTTC:   inv.AmountTTC,
		Remise:      inv.Remise,
		DueDate:     inv.DueDate,
		PaymentMode: inv.PaymentMode,
		SettledAt:   inv.SettledAt,
		Status:      inv.Status,
		Lines:       lines,
	}, nil
}
