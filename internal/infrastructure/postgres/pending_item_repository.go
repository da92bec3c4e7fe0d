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

var _ repository.PendingItemRepository = (*PendingItemRepo)(nil)

// PendingItemRepo implementación del puerto PendingItemRepository sobre PostgreSQL.
type PendingItemRepo struct {
	q Querier
}

// NewPendingItemRepository construye el adaptador de persistencia para pendientes.
func NewPendingItemRepository(q Querier) *PendingItemRepo {
	return &PendingItemRepo{q: q}
}

const pendingItemColumns = `id, item, date, assigned_to, due_date, estado, observations, sede_id, created_by, created_at, updated_at`

// List lista pendientes: abiertos primero, luego más recientes.
func (r *PendingItemRepo) List(sedeID, estado *string) ([]*entity.PendingItem, error) {
	var w whereBuilder
	if sedeID != nil {
		w.add("sede_id = $?", *sedeID)
	}
	if estado != nil {
		w.add("estado = $?", *estado)
	}
	where, args := w.clause()
	query := `SELECT ` + pendingItemColumns + ` FROM pending_items` + where +
		` ORDER BY CASE WHEN estado = 'abierto' THEN 0 ELSE 1 END, created_at DESC, date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending items: %w", err)
	}
	defer rows.Close()

	var list []*entity.PendingItem
	for rows.Next() {
		p, err := scanPendingItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un pendiente por ID, o nil si no existe.
func (r *PendingItemRepo) GetByID(id string) (*entity.PendingItem, error) {
	query := `SELECT ` + pendingItemColumns + ` FROM pending_items WHERE id = $1`
	p, err := scanPendingItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create persiste un pendiente.
func (r *PendingItemRepo) Create(p *entity.PendingItem) error {
	query := `
		INSERT INTO pending_items (id, item, date, assigned_to, due_date, estado, observations, sede_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Item, p.Date.Time(), p.AssignedTo, p.DueDate.Time(), p.Estado,
		p.Observations, p.SedeID, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending item: %w", err)
	}
	return nil
}

// Update actualiza un pendiente completo.
func (r *PendingItemRepo) Update(p *entity.PendingItem) error {
	query := `
		UPDATE pending_items
		SET item = $2, date = $3, assigned_to = $4, due_date = $5, estado = $6,
		    observations = $7, sede_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Item, p.Date.Time(), p.AssignedTo, p.DueDate.Time(), p.Estado,
		p.Observations, p.SedeID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pending item: %w", err)
	}
	return nil
}

// Delete elimina un pendiente; domain.ErrNotFound si el id no existe.
func (r *PendingItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pending_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pending item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPendingItem(row pgx.Row) (*entity.PendingItem, error) {
	var (
		p             entity.PendingItem
		date, dueDate time.Time
	)
	err := row.Scan(
		&p.ID, &p.Item, &date, &p.AssignedTo, &dueDate, &p.Estado,
		&p.Observations, &p.SedeID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan pending item: %w", err)
	}
	p.Date = calendar.FromTime(date)
	p.DueDate = calendar.FromTime(dueDate)
	return &p, nil
}
