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

// ClientUseCase manages the client registry.
type ClientUseCase struct {
	clients   repository.ClientRepository
	sequences *sequence.Generator
}

// NewClientUseCase builds the use case.
func NewClientUseCase(clients repository.ClientRepository, sequences *sequence.Generator) *ClientUseCase {
	return &ClientUseCase{clients: clients, sequences: sequences}
}

// Create persists a client with a generated C##### numero (any numero in the
// request is ignored).
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	numero, err := uc.sequences.Next(sequence.PrefixClient)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Client{
		ID:           uuid.New().String(),
		Numero:       numero,
		Name:         in.Name,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		RegisteredAt: now,
		Type:         in.Type,
		PaymentTerms: in.PaymentTerms,
		SpecialTerms: in.SpecialTerms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.clients.Create(c); err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

// Update edits a client; numero is immutable.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Address = in.Address
	c.Phone = in.Phone
	c.Email = in.Email
	c.Type = in.Type
	c.PaymentTerms = in.PaymentTerms
	c.SpecialTerms = in.SpecialTerms
	c.UpdatedAt = time.Now()
	if err := uc.clients.Update(c); err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

// GetByID returns one client.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewClientResponse(c), nil
}

// List returns every client.
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.NewClientResponse(c))
	}
	return out, nil
}

// Delete removes a client.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.clients.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(id)
}
