package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbkgestion/stock-api/internal/application/dto"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// SupplierUseCase manages the supplier registry.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	sequences *sequence.Generator
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(suppliers repository.SupplierRepository, sequences *sequence.Generator) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, sequences: sequences}
}

// Create persists a supplier with a generated FOU##### numero.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	numero, err := uc.sequences.Next(sequence.PrefixSupplier)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:           uuid.New().String(),
		Numero:       numero,
		Name:         in.Name,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		RegisteredAt: now,
		ContactName:  in.ContactName,
		Type:         in.Type,
		PaymentDelay: in.PaymentDelay,
		PaymentMode:  in.PaymentMode,
		BankAccount:  in.BankAccount,
		SpecialTerms: in.SpecialTerms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.suppliers.Create(s); err != nil {
		return nil, err
	}
	return dto.NewSupplierResponse(s), nil
}

// Update edits a supplier; numero is immutable.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.Address = in.Address
	s.Phone = in.Phone
	s.Email = in.Email
	s.ContactName = in.ContactName
	s.Type = in.Type
	s.PaymentDelay = in.PaymentDelay
	s.PaymentMode = in.PaymentMode
	s.BankAccount = in.BankAccount
	s.SpecialTerms = in.SpecialTerms
	s.UpdatedAt = time.Now()
	if err := uc.suppliers.Update(s); err != nil {
		return nil, err
	}
	return dto.NewSupplierResponse(s), nil
}

// GetByID returns one supplier.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewSupplierResponse(s), nil
}

// List returns every supplier.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.NewSupplierResponse(s))
	}
	return out, nil
}

// Delete removes a supplier.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Delete(id)
}
