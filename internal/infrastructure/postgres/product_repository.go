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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo persists products in PostgreSQL. Works over a pool or a tx.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, reference, nom, categorie, description,
	prix_achat, prix_unitaire_ht, marge, taux_tva,
	stock_actuel, stock_minimal, seuil_reappro,
	stock_avant_mouvement, stock_apres_mouvement,
	fournisseur_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Reference, &p.Name, &p.Category, &p.Description,
		&p.PrixAchat, &p.PrixUnitaireHT, &p.Marge, &p.TVARate,
		&p.StockActuel, &p.StockMinimal, &p.SeuilReappro,
		&p.StockAvantMouvement, &p.StockApresMouvement,
		&p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a product.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO produits (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Reference, p.Name, p.Category, p.Description,
		p.PrixAchat, p.PrixUnitaireHT, p.Marge, p.TVARate,
		p.StockActuel, p.StockMinimal, p.SeuilReappro,
		p.StockAvantMouvement, p.StockApresMouvement,
		p.SupplierID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID returns the product or nil when absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate returns the product with its row locked until the surrounding
// transaction ends, or nil when absent. Only meaningful on a tx-bound repo.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock product: %w", err)
	}
	return p, nil
}

// Update writes the catalog fields. Reference and stock columns stay untouched.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE produits SET
			nom = $2, categorie = $3, description = $4,
			prix_achat = $5, prix_unitaire_ht = $6, marge = $7, taux_tva = $8,
			stock_minimal = $9, seuil_reappro = $10,
			fournisseur_id = $11, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Category, p.Description,
		p.PrixAchat, p.PrixUnitaireHT, p.Marge, p.TVARate,
		p.StockMinimal, p.SeuilReappro, p.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyMovement writes the new stock level together with the before/after
// snapshot of the movement that produced it.
func (r *ProductRepo) ApplyMovement(id string, newStock, before, after int64) error {
	query := `
		UPDATE produits SET
			stock_actuel = $2,
			stock_avant_mouvement = $3,
			stock_apres_mouvement = $4,
			updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, newStock, before, after)
	if err != nil {
		return fmt.Errorf("apply stock movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all products, newest first.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a product.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
