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

var _ repository.QuoteEntryRepository = (*QuoteEntryRepo)(nil)

// QuoteEntryRepo implementación del puerto QuoteEntryRepository sobre PostgreSQL.
type QuoteEntryRepo struct {
	q Querier
}

// NewQuoteEntryRepository construye el adaptador de persistencia para cotizaciones.
func NewQuoteEntryRepository(q Querier) *QuoteEntryRepo {
	return &QuoteEntryRepo{q: q}
}

const quoteEntryColumns = `id, zone, equipment, client, notes, estado, sede_id, created_by, created_at, updated_at`

// List lista cotizaciones (más recientes primero) filtrando por sede y/o estado.
func (r *QuoteEntryRepo) List(sedeID, estado *string) ([]*entity.QuoteEntry, error) {
	var w whereBuilder
	if sedeID != nil {
		w.add("sede_id = $?", *sedeID)
	}
	if estado != nil {
		w.add("estado = $?", *estado)
	}
	where, args := w.clause()
	query := `SELECT ` + quoteEntryColumns + ` FROM quote_entries` + where + ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quote entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.QuoteEntry
	for rows.Next() {
		q, err := scanQuoteEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// GetByID obtiene una cotización por ID, o nil si no existe.
func (r *QuoteEntryRepo) GetByID(id string) (*entity.QuoteEntry, error) {
	query := `SELECT ` + quoteEntryColumns + ` FROM quote_entries WHERE id = $1`
	q, err := scanQuoteEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

// Create persiste una cotización.
func (r *QuoteEntryRepo) Create(q *entity.QuoteEntry) error {
	query := `
		INSERT INTO quote_entries (id, zone, equipment, client, notes, estado, sede_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Zone, q.Equipment, q.Client, q.Notes, q.Estado, q.SedeID, q.CreatedBy,
		q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote entry: %w", err)
	}
	return nil
}

// Update actualiza una cotización completa.
func (r *QuoteEntryRepo) Update(q *entity.QuoteEntry) error {
	query := `
		UPDATE quote_entries
		SET zone = $2, equipment = $3, client = $4, notes = $5, estado = $6, sede_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Zone, q.Equipment, q.Client, q.Notes, q.Estado, q.SedeID, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote entry: %w", err)
	}
	return nil
}

// Delete elimina una cotización; sus asignaciones caen por ON DELETE CASCADE.
func (r *QuoteEntryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quote_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanQuoteEntry(row pgx.Row) (*entity.QuoteEntry, error) {
	var q entity.QuoteEntry
	err := row.Scan(
		&q.ID, &q.Zone, &q.Equipment, &q.Client, &q.Notes, &q.Estado, &q.SedeID,
		&q.CreatedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan quote entry: %w", err)
	}
	return &q, nil
}
