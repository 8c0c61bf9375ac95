package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var _ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)

// PurchaseInvoiceRepo persists purchase invoices (header + lines) in PostgreSQL.
type PurchaseInvoiceRepo struct {
	q Querier
}

// NewPurchaseInvoiceRepository builds the adapter.
func NewPurchaseInvoiceRepository(q Querier) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{q: q}
}

const purchaseInvoiceColumns = `
	id, numero, date_facture, fournisseur_id,
	montant_ht, tva, montant_ttc,
	date_echeance, mode_paiement, date_reglement, statut,
	created_at, updated_at`

func scanPurchaseInvoice(row pgx.Row) (*entity.PurchaseInvoice, error) {
	var inv entity.PurchaseInvoice
	err := row.Scan(
		&inv.ID, &inv.Numero, &inv.Date, &inv.SupplierID,
		&inv.AmountHT, &inv.TVA, &inv.AmountTTC,
		&inv.DueDate, &inv.PaymentMode, &inv.SettledAt, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PurchaseInvoiceRepo) insertLines(ctx context.Context, invoiceID string, lines []entity.DocumentLine) error {
	for _, l := range lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO facture_achat_lignes (facture_achat_id, produit_id, quantite) VALUES ($1, $2, $3)`,
			invoiceID, l.ProductID, l.Quantity)
		if err != nil {
			return fmt.Errorf("insert purchase line: %w", err)
		}
	}
	return nil
}

func (r *PurchaseInvoiceRepo) loadLines(ctx context.Context, invoiceID string) ([]entity.DocumentLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT produit_id, quantite FROM facture_achat_lignes WHERE facture_achat_id = $1 ORDER BY id`,
		invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load purchase lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Create inserts the header and its lines.
func (r *PurchaseInvoiceRepo) Create(inv *entity.PurchaseInvoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO facture_achats (` + purchaseInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Numero, inv.Date, inv.SupplierID,
		inv.AmountHT, inv.TVA, inv.AmountTTC,
		inv.DueDate, inv.PaymentMode, inv.SettledAt, inv.Status,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create purchase invoice: %w", err)
	}
	return r.insertLines(ctx, inv.ID, inv.Lines)
}

// GetByID returns the invoice with its lines, or nil when absent.
func (r *PurchaseInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseInvoiceColumns + ` FROM facture_achats WHERE id = $1`
	inv, err := scanPurchaseInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase invoice: %w", err)
	}
	if inv.Lines, err = r.loadLines(ctx, id); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update rewrites the header and replaces the lines. Numero stays untouched.
func (r *PurchaseInvoiceRepo) Update(inv *entity.PurchaseInvoice) error {
	ctx := context.Background()
	query := `
		UPDATE facture_achats SET
			date_facture = $2, fournisseur_id = $3,
			montant_ht = $4, tva = $5, montant_ttc = $6,
			date_echeance = $7, mode_paiement = $8, date_reglement = $9,
			statut = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.Date, inv.SupplierID,
		inv.AmountHT, inv.TVA, inv.AmountTTC,
		inv.DueDate, inv.PaymentMode, inv.SettledAt, inv.Status,
	)
	if err != nil {
		return fmt.Errorf("update purchase invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM facture_achat_lignes WHERE facture_achat_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("clear purchase lines: %w", err)
	}
	return r.insertLines(ctx, inv.ID, inv.Lines)
}

// List returns all invoices with their lines, newest first.
func (r *PurchaseInvoiceRepo) List() ([]*entity.PurchaseInvoice, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseInvoiceColumns + ` FROM facture_achats ORDER BY date_facture DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseInvoice
	for rows.Next() {
		inv, err := scanPurchaseInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range out {
		if inv.Lines, err = r.loadLines(ctx, inv.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Delete removes the invoice; lines go with it via ON DELETE CASCADE.
func (r *PurchaseInvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM facture_achats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumAmountHTBetween totals montant HT of invoices dated in [from, to].
func (r *PurchaseInvoiceRepo) SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(montant_ht), 0) FROM facture_achats WHERE date_facture BETWEEN $1 AND $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum purchase amount: %w", err)
	}
	return sum, nil
}
