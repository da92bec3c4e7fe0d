package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

var _ repository.QuoteAssignmentRepository = (*QuoteAssignmentRepo)(nil)

// QuoteAssignmentRepo implementación del puerto QuoteAssignmentRepository sobre PostgreSQL.
type QuoteAssignmentRepo struct {
	q Querier
}

// NewQuoteAssignmentRepository construye el adaptador de persistencia para asignaciones de cotización.
func NewQuoteAssignmentRepository(q Querier) *QuoteAssignmentRepo {
	return &QuoteAssignmentRepo{q: q}
}

const quoteAssignmentColumns = `id, quote_entry_id, date, status, created_at, updated_at`

// List lista asignaciones de cotización (fecha descendente) con filtros opcionales.
func (r *QuoteAssignmentRepo) List(f repository.QuoteAssignmentFilter) ([]*entity.QuoteAssignment, error) {
	var w whereBuilder
	if f.QuoteEntryID != nil {
		w.add("quote_entry_id = $?", *f.QuoteEntryID)
	}
	if f.Date != nil {
		w.add("date = $?", f.Date.Time())
	}
	if f.Status != nil {
		w.add("status = $?", *f.Status)
	}
	if f.From != nil {
		w.add("date >= $?", f.From.Time())
	}
	if f.To != nil {
		w.add("date <= $?", f.To.Time())
	}
	where, args := w.clause()
	query := `SELECT ` + quoteAssignmentColumns + ` FROM quote_assignments` + where + ` ORDER BY date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quote assignments: %w", err)
	}
	defer rows.Close()

	var list []*entity.QuoteAssignment
	for rows.Next() {
		a, err := scanQuoteAssignment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Upsert inserta o sobreescribe el status cuando (quote_entry_id, date) ya
// existe; rellena a con la fila resultante (id original en caso de update).
func (r *QuoteAssignmentRepo) Upsert(a *entity.QuoteAssignment) error {
	query := `
		INSERT INTO quote_assignments (id, quote_entry_id, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (quote_entry_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		a.ID, a.QuoteEntryID, a.Date.Time(), a.Status, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert quote assignment: %w", err)
	}
	return nil
}

// UpdateStatus cambia el status y devuelve la fila, o nil si no existe.
func (r *QuoteAssignmentRepo) UpdateStatus(id, status string) (*entity.QuoteAssignment, error) {
	query := `
		UPDATE quote_assignments SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + quoteAssignmentColumns
	a, err := scanQuoteAssignment(r.q.QueryRow(context.Background(), query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Delete elimina una asignación de cotización; domain.ErrNotFound si no existe.
func (r *QuoteAssignmentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quote_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanQuoteAssignment(row pgx.Row) (*entity.QuoteAssignment, error) {
	var (
		a    entity.QuoteAssignment
		date time.Time
	)
	err := row.Scan(&a.ID, &a.QuoteEntryID, &date, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan quote assignment: %w", err)
	}
	a.Date = calendar.FromTime(date)
	return &a, nil
}
