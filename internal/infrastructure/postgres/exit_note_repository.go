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

var _ repository.ExitNoteRepository = (*ExitNoteRepo)(nil)

// ExitNoteRepo persists stock-exit notes (header + lines) in PostgreSQL.
type ExitNoteRepo struct {
	q Querier
}

// NewExitNoteRepository builds the adapter.
func NewExitNoteRepository(q Querier) *ExitNoteRepo {
	return &ExitNoteRepo{q: q}
}

const exitNoteColumns = `
	id, numero, date_sortie, motif_sortie, destination,
	matricule_vehicule, nom_chauffeur, responsable_sortie,
	stock_avant, stock_apres, created_at, updated_at`

func scanExitNote(row pgx.Row) (*entity.ExitNote, error) {
	var n entity.ExitNote
	err := row.Scan(
		&n.ID, &n.Numero, &n.Date, &n.Reason, &n.Destination,
		&n.VehicleReg, &n.DriverName, &n.IssuedBy,
		&n.StockBefore, &n.StockAfter, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *ExitNoteRepo) insertLines(ctx context.Context, noteID string, lines []entity.DocumentLine) error {
	for _, l := range lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO bon_de_sortie_lignes (bon_de_sortie_id, produit_id, quantite) VALUES ($1, $2, $3)`,
			noteID, l.ProductID, l.Quantity)
		if err != nil {
			return fmt.Errorf("insert exit note line: %w", err)
		}
	}
	return nil
}

func (r *ExitNoteRepo) loadLines(ctx context.Context, noteID string) ([]entity.DocumentLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT produit_id, quantite FROM bon_de_sortie_lignes WHERE bon_de_sortie_id = $1 ORDER BY id`,
		noteID)
	if err != nil {
		return nil, fmt.Errorf("load exit note lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan exit note line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Create inserts the header and its lines.
func (r *ExitNoteRepo) Create(n *entity.ExitNote) error {
	ctx := context.Background()
	query := `
		INSERT INTO bons_de_sortie (` + exitNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Numero, n.Date, n.Reason, n.Destination,
		n.VehicleReg, n.DriverName, n.IssuedBy,
		n.StockBefore, n.StockAfter, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create exit note: %w", err)
	}
	return r.insertLines(ctx, n.ID, n.Lines)
}

// GetByID returns the note with its lines, or nil when absent.
func (r *ExitNoteRepo) GetByID(id string) (*entity.ExitNote, error) {
	ctx := context.Background()
	query := `SELECT ` + exitNoteColumns + ` FROM bons_de_sortie WHERE id = $1`
	n, err := scanExitNote(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit note: %w", err)
	}
	if n.Lines, err = r.loadLines(ctx, id); err != nil {
		return nil, err
	}
	return n, nil
}

// Update rewrites the header and replaces the lines. Numero stays untouched.
func (r *ExitNoteRepo) Update(n *entity.ExitNote) error {
	ctx := context.Background()
	query := `
		UPDATE bons_de_sortie SET
			date_sortie = $2, motif_sortie = $3, destination = $4,
			matricule_vehicule = $5, nom_chauffeur = $6, responsable_sortie = $7,
			stock_avant = $8, stock_apres = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		n.ID, n.Date, n.Reason, n.Destination,
		n.VehicleReg, n.DriverName, n.IssuedBy,
		n.StockBefore, n.StockAfter,
	)
	if err != nil {
		return fmt.Errorf("update exit note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM bon_de_sortie_lignes WHERE bon_de_sortie_id = $1`, n.ID); err != nil {
		return fmt.Errorf("clear exit note lines: %w", err)
	}
	return r.insertLines(ctx, n.ID, n.Lines)
}

// List returns all notes with their lines, newest first.
func (r *ExitNoteRepo) List() ([]*entity.ExitNote, error) {
	ctx := context.Background()
	query := `SELECT ` + exitNoteColumns + ` FROM bons_de_sortie ORDER BY date_sortie DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exit notes: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExitNote
	for rows.Next() {
		n, err := scanExitNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exit note: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, n := range out {
		if n.Lines, err = r.loadLines(ctx, n.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Delete removes the note; lines go with it via ON DELETE CASCADE.
func (r *ExitNoteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM bons_de_sortie WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exit note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
