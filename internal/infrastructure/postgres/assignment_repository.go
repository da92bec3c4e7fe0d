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

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador de persistencia para asignaciones.
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

const assignmentColumns = `id, service_entry_id, resource_id, date, created_at`

// List lista asignaciones por fecha ascendente, con filtros opcionales.
func (r *AssignmentRepo) List(f repository.AssignmentFilter) ([]*entity.Assignment, error) {
	var w whereBuilder
	if f.ServiceEntryID != nil {
		w.add("service_entry_id = $?", *f.ServiceEntryID)
	}
	if f.ResourceID != nil {
		w.add("resource_id = $?", *f.ResourceID)
	}
	if f.Date != nil {
		w.add("date = $?", f.Date.Time())
	}
	if f.From != nil {
		w.add("date >= $?", f.From.Time())
	}
	if f.To != nil {
		w.add("date <= $?", f.To.Time())
	}
	where, args := w.clause()
	query := `SELECT ` + assignmentColumns + ` FROM assignments` + where + ` ORDER BY date ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Assignment
	for rows.Next() {
		var (
			a    entity.Assignment
			date time.Time
		)
		if err := rows.Scan(&a.ID, &a.ServiceEntryID, &a.ResourceID, &date, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.Date = calendar.FromTime(date)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create inserta con ON CONFLICT DO NOTHING. La constraint única sobre
// (service_entry_id, resource_id, date) es el mecanismo de dedup: si no
// vuelve fila, la tripleta ya existía y se devuelve domain.ErrDuplicate.
func (r *AssignmentRepo) Create(a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, service_entry_id, resource_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (service_entry_id, resource_id, date) DO NOTHING
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		a.ID, a.ServiceEntryID, a.ResourceID, a.Date.Time(), a.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Delete elimina una asignación; domain.ErrNotFound si el id no existe.
func (r *AssignmentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
