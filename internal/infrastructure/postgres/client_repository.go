package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo persists clients in PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `
	id, numero, nom_raison_sociale, adresse, telephone, email,
	date_enregistrement, type_client, conditions_paiement,
	historique_achats, conditions_speciales, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Numero, &c.Name, &c.Address, &c.Phone, &c.Email,
		&c.RegisteredAt, &c.Type, &c.PaymentTerms,
		&c.PurchaseTotal, &c.SpecialTerms, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Numero, c.Name, c.Address, c.Phone, c.Email,
		c.RegisteredAt, c.Type, c.PaymentTerms,
		c.PurchaseTotal, c.SpecialTerms, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Update writes every field but the generated numero.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET
			nom_raison_sociale = $2, adresse = $3, telephone = $4, email = $5,
			date_enregistrement = $6, type_client = $7, conditions_paiement = $8,
			historique_achats = $9, conditions_speciales = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Address, c.Phone, c.Email,
		c.RegisteredAt, c.Type, c.PaymentTerms,
		c.PurchaseTotal, c.SpecialTerms,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
