package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación del puerto ResourceRepository sobre PostgreSQL
// (usable con pool o tx).
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

const resourceColumns = `id, name, type, available, sede_id, created_at, updated_at`

// List lista recursos ordenados por tipo y nombre. Con sede_id, incluye los
// recursos de esa sede y además las fases (que son globales).
func (r *ResourceRepo) List(sedeID, resourceType *string) ([]*entity.Resource, error) {
	var w whereBuilder
	if sedeID != nil {
		w.add("(sede_id = $? OR type = 'phase')", *sedeID)
	}
	if resourceType != nil {
		w.add("type = $?", *resourceType)
	}
	where, args := w.clause()
	query := `SELECT ` + resourceColumns + ` FROM resources` + where + ` ORDER BY type, name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var list []*entity.Resource
	for rows.Next() {
		var res entity.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Type, &res.Available, &res.SedeID, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// GetByID obtiene un recurso por ID, o nil si no existe.
func (r *ResourceRepo) GetByID(id string) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	var res entity.Resource
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.Name, &res.Type, &res.Available, &res.SedeID, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &res, nil
}

// Create persiste un recurso.
func (r *ResourceRepo) Create(resource *entity.Resource) error {
	query := `
		INSERT INTO resources (id, name, type, available, sede_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		resource.ID, resource.Name, resource.Type, resource.Available, resource.SedeID,
		resource.CreatedAt, resource.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// Update actualiza un recurso completo.
func (r *ResourceRepo) Update(resource *entity.Resource) error {
	query := `
		UPDATE resources SET name = $2, type = $3, available = $4, sede_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		resource.ID, resource.Name, resource.Type, resource.Available, resource.SedeID, resource.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

// Delete elimina un recurso; domain.ErrNotFound si el id no existe.
func (r *ResourceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
