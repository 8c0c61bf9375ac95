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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo persists suppliers in PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository builds the adapter.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `
	id, numero, nom_raison_sociale, adresse, telephone, email,
	date_enregistrement, contact_principal, type_fournisseur,
	delai_paiement, mode_paiement, rib, historique_achats,
	conditions_speciales, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Numero, &s.Name, &s.Address, &s.Phone, &s.Email,
		&s.RegisteredAt, &s.ContactName, &s.Type,
		&s.PaymentDelay, &s.PaymentMode, &s.BankAccount, &s.PurchaseTotal,
		&s.SpecialTerms, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO fournisseurs (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Numero, s.Name, s.Address, s.Phone, s.Email,
		s.RegisteredAt, s.ContactName, s.Type,
		s.PaymentDelay, s.PaymentMode, s.BankAccount, s.PurchaseTotal,
		s.SpecialTerms, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fournisseurs WHERE id = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update writes every field but the generated numero.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE fournisseurs SET
			nom_raison_sociale = $2, adresse = $3, telephone = $4, email = $5,
			date_enregistrement = $6, contact_principal = $7, type_fournisseur = $8,
			delai_paiement = $9, mode_paiement = $10, rib = $11,
			historique_achats = $12, conditions_speciales = $13, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Address, s.Phone, s.Email,
		s.RegisteredAt, s.ContactName, s.Type,
		s.PaymentDelay, s.PaymentMode, s.BankAccount,
		s.PurchaseTotal, s.SpecialTerms,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM fournisseurs ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SupplierRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
