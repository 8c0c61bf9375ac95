package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	domledger "github.com/sbkgestion/stock-api/internal/domain/ledger"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// ExitNoteUseCase orchestrates stock-exit notes: outgoing movements without a
// counterparty, carrying destination and transport metadata instead.
type ExitNoteUseCase struct {
	txRunner TxRunner
	engine   *ledger.Engine
	products repository.ProductRepository
	exits    repository.ExitNoteRepository
}

// NewExitNoteUseCase builds the use case.
func NewExitNoteUseCase(
	txRunner TxRunner,
	engine *ledger.Engine,
	products repository.ProductRepository,
	exits repository.ExitNoteRepository,
) *ExitNoteUseCase {
	return &ExitNoteUseCase{
		txRunner: txRunner,
		engine:   engine,
		products: products,
		exits:    exits,
	}
}

// Create validates the request, applies the outgoing movements and persists
// the note with a freshly issued BS##### code, all atomically.
func (uc *ExitNoteUseCase) Create(ctx context.Context, in dto.ExitNoteRequest) (*dto.ExitNoteResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := loadLineProducts(uc.products, in.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	lines := dto.ToEntityLines(in.Lines)

	note := &entity.ExitNote{
		ID:          uuid.New().String(),
		Date:        date,
		Lines:       lines,
		Reason:      in.Reason,
		Destination: in.Destination,
		VehicleReg:  in.VehicleReg,
		DriverName:  in.DriverName,
		IssuedBy:    in.IssuedBy,
		StockBefore: domledger.TotalQuantity(lines),
		StockAfter:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		exits repository.ExitNoteRepository,
		sequences repository.SequenceRepository,
	) error {
		if err := uc.engine.ReplaceLines(products, entity.KindExitNote, nil, note.Lines); err != nil {
			return err
		}
		numero, err := sequence.NextWith(sequences, sequence.PrefixExitNote)
		if err != nil {
			return err
		}
		note.Numero = numero
		return exits.Create(note)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(note)
}

// Update replaces the line set and metadata; numero immutable.
func (uc *ExitNoteUseCase) Update(ctx context.Context, id string, in dto.ExitNoteRequest) (*dto.ExitNoteResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := loadLineProducts(uc.products, in.Lines); err != nil {
		return nil, err
	}

	var note *entity.ExitNote
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		exits repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := exits.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		newLines := dto.ToEntityLines(in.Lines)
		if err := uc.engine.ReplaceLines(products, entity.KindExitNote, existing.Lines, newLines); err != nil {
			return err
		}

		if in.Date != nil {
			existing.Date = *in.Date
		}
		existing.Lines = newLines
		existing.Reason = in.Reason
		existing.Destination = in.Destination
		existing.VehicleReg = in.VehicleReg
		existing.DriverName = in.DriverName
		existing.IssuedBy = in.IssuedBy
		existing.StockBefore = domledger.TotalQuantity(newLines)
		existing.StockAfter = 0
		existing.UpdatedAt = time.Now()
		note = existing
		return exits.Update(existing)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(note)
}

// Delete reverses the note's movements and removes it.
func (uc *ExitNoteUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SalesInvoiceRepository,
		_ repository.PurchaseInvoiceRepository,
		exits repository.ExitNoteRepository,
		_ repository.SequenceRepository,
	) error {
		existing, err := exits.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := uc.engine.ReplaceLines(products, entity.KindExitNote, existing.Lines, nil); err != nil {
			return err
		}
		return exits.Delete(id)
	})
}

// GetByID returns one note with products resolved.
func (uc *ExitNoteUseCase) GetByID(ctx context.Context, id string) (*dto.ExitNoteResponse, error) {
	note, err := uc.exits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(note)
}

// List returns every exit note with products resolved.
func (uc *ExitNoteUseCase) List(ctx context.Context) ([]*dto.ExitNoteResponse, error) {
	notes, err := uc.exits.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExitNoteResponse, 0, len(notes))
	for _, note := range notes {
		resp, err := uc.toResponse(note)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *ExitNoteUseCase) toResponse(note *entity.ExitNote) (*dto.ExitNoteResponse, error) {
	lines, err := resolveLines(uc.products, note.Lines)
	if err != nil {
		return nil, err
	}
	return &dto.ExitNoteResponse{
		ID:          note.ID,
		Numero:      note.Numero,
		Date:        note.Date,
		Reason:      note.Reason,
		Destination: note.Destination,
		VehicleReg:  note.VehicleReg,
		DriverName:  note.DriverName,
		IssuedBy:    note.IssuedBy,
		StockBefore: note.StockBefore,
		StockAfter:  note.StockAfter,
		Lines:       lines,
	}, nil
}
