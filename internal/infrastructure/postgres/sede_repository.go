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

var _ repository.SedeRepository = (*SedeRepo)(nil)

// SedeRepo implementación del puerto SedeRepository sobre PostgreSQL.
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador de persistencia para sedes.
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

const sedeColumns = `id, nombre, codigo, ciudad, direccion, activa, created_at, updated_at`

// List lista sedes ordenadas por nombre; activa filtra opcionalmente.
func (r *SedeRepo) List(activa *bool) ([]*entity.Sede, error) {
	var w whereBuilder
	if activa != nil {
		w.add("activa = $?", *activa)
	}
	where, args := w.clause()
	query := `SELECT ` + sedeColumns + ` FROM sedes` + where + ` ORDER BY nombre ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sede
	for rows.Next() {
		s, err := scanSede(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una sede por ID, o nil si no existe.
func (r *SedeRepo) GetByID(id string) (*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE id = $1`
	s, err := scanSede(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Create persiste una sede. Código duplicado -> domain.ErrDuplicate.
func (r *SedeRepo) Create(sede *entity.Sede) error {
	query := `
		INSERT INTO sedes (id, nombre, codigo, ciudad, direccion, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sede.ID, sede.Nombre, sede.Codigo, sede.Ciudad, sede.Direccion, sede.Activa,
		sede.CreatedAt, sede.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sede: %w", err)
	}
	return nil
}

// Update actualiza una sede. Código duplicado -> domain.ErrDuplicate.
func (r *SedeRepo) Update(sede *entity.Sede) error {
	query := `
		UPDATE sedes SET nombre = $2, codigo = $3, ciudad = $4, direccion = $5, activa = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sede.ID, sede.Nombre, sede.Codigo, sede.Ciudad, sede.Direccion, sede.Activa, sede.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sede: %w", err)
	}
	return nil
}

// Delete elimina una sede; domain.ErrNotFound si el id no existe.
func (r *SedeRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sedes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sede: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSede(row pgx.Row) (*entity.Sede, error) {
	var s entity.Sede
	err := row.Scan(&s.ID, &s.Nombre, &s.Codigo, &s.Ciudad, &s.Direccion, &s.Activa, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan sede: %w", err)
	}
	return &s, nil
}
