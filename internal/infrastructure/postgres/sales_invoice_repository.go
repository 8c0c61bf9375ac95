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

var _ repository.SalesInvoiceRepository = (*SalesInvoiceRepo)(nil)

// SalesInvoiceRepo persists sales invoices (header + lines) in PostgreSQL.
// Callers that mutate lines must run on a tx-bound repo so header and lines
// change together.
type SalesInvoiceRepo struct {
	q Querier
}

// NewSalesInvoiceRepository builds the adapter.
func NewSalesInvoiceRepository(q Querier) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{q: q}
}

const salesInvoiceColumns = `
	id, numero, date_facture, client_id, type_facture,
	montant_ht, tva, montant_ttc, remise,
	date_echeance, mode_paiement, date_reglement, statut,
	created_at, updated_at`

func scanSalesInvoice(row pgx.Row) (*entity.SalesInvoice, error) {
	var inv entity.SalesInvoice
	err := row.Scan(
		&inv.ID, &inv.Numero, &inv.Date, &inv.ClientID, &inv.Type,
		&inv.AmountHT, &inv.TVA, &inv.AmountTTC, &inv.Remise,
		&inv.DueDate, &inv.PaymentMode, &inv.SettledAt, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SalesInvoiceRepo) insertLines(ctx context.Context, invoiceID string, lines []entity.DocumentLine) error {
	for _, l := range lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO facture_lignes (facture_id, produit_id, quantite) VALUES ($1, $2, $3)`,
			invoiceID, l.ProductID, l.Quantity)
		if err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

func (r *SalesInvoiceRepo) loadLines(ctx context.Context, invoiceID string) ([]entity.DocumentLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT produit_id, quantite FROM facture_lignes WHERE facture_id = $1 ORDER BY id`,
		invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Create inserts the header and its lines.
func (r *SalesInvoiceRepo) Create(inv *entity.SalesInvoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO factures (` + salesInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Numero, inv.Date, inv.ClientID, inv.Type,
		inv.AmountHT, inv.TVA, inv.AmountTTC, inv.Remise,
		inv.DueDate, inv.PaymentMode, inv.SettledAt, inv.Status,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create sales invoice: %w", err)
	}
	return r.insertLines(ctx, inv.ID, inv.Lines)
}

// GetByID returns the invoice with its lines, or nil when absent.
func (r *SalesInvoiceRepo) GetByID(id string) (*entity.SalesInvoice, error) {
	ctx := context.Background()
	query := `SELECT ` + salesInvoiceColumns + ` FROM factures WHERE id = $1`
	inv, err := scanSalesInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales invoice: %w", err)
	}
	if inv.Lines, err = r.loadLines(ctx, id); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update rewrites the header and replaces the lines. Numero stays untouched.
func (r *SalesInvoiceRepo) Update(inv *entity.SalesInvoice) error {
	ctx := context.Background()
	query := `
		UPDATE factures SET
			date_facture = $2, client_id = $3, type_facture = $4,
			montant_ht = $5, tva = $6, montant_ttc = $7, remise = $8,
			date_echeance = $9, mode_paiement = $10, date_reglement = $11,
			statut = $12, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.Date, inv.ClientID, inv.Type,
		inv.AmountHT, inv.TVA, inv.AmountTTC, inv.Remise,
		inv.DueDate, inv.PaymentMode, inv.SettledAt, inv.Status,
	)
	if err != nil {
		return fmt.Errorf("update sales invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM facture_lignes WHERE facture_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("clear invoice lines: %w", err)
	}
	return r.insertLines(ctx, inv.ID, inv.Lines)
}

// List returns all invoices with their lines, newest first.
func (r *SalesInvoiceRepo) List() ([]*entity.SalesInvoice, error) {
	ctx := context.Background()
	query := `SELECT ` + salesInvoiceColumns + ` FROM factures ORDER BY date_facture DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesInvoice
	for rows.Next() {
		inv, err := scanSalesInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales invoice: %w", err)
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
func (r *SalesInvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM factures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumAmountHTBetween totals montant HT of invoices dated in [from, to].
func (r *SalesInvoiceRepo) SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(montant_ht), 0) FROM factures WHERE date_facture BETWEEN $1 AND $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum sales amount: %w", err)
	}
	return sum, nil
}
