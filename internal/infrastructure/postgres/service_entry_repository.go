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

var _ repository.ServiceEntryRepository = (*ServiceEntryRepo)(nil)

// ServiceEntryRepo implementación del puerto ServiceEntryRepository sobre PostgreSQL.
type ServiceEntryRepo struct {
	q Querier
}

// NewServiceEntryRepository construye el adaptador de persistencia para entradas de servicio.
func NewServiceEntryRepository(q Querier) *ServiceEntryRepo {
	return &ServiceEntryRepo{q: q}
}

// Las lecturas denormalizan nombre y código de la sede vía LEFT JOIN.
const serviceEntrySelect = `
	SELECT se.id, se.site, se.zone, se.ott, se.client, se.advisor, se.type,
	       se.equipment_state, se.equipment, se.notas, se.estado, se.sede_id,
	       se.created_by, se.created_at, se.updated_at,
	       COALESCE(s.nombre, ''), COALESCE(s.codigo, '')
	FROM service_entries se
	LEFT JOIN sedes s ON se.sede_id = s.id`

// List lista entradas (más recientes primero) filtrando por sede y/o estado.
func (r *ServiceEntryRepo) List(sedeID, estado *string) ([]*entity.ServiceEntry, error) {
	var w whereBuilder
	if sedeID != nil {
		w.add("se.sede_id = $?", *sedeID)
	}
	if estado != nil {
		w.add("se.estado = $?", *estado)
	}
	where, args := w.clause()
	query := serviceEntrySelect + where + ` ORDER BY se.created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceEntry
	for rows.Next() {
		e, err := scanServiceEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID obtiene una entrada por ID, o nil si no existe.
func (r *ServiceEntryRepo) GetByID(id string) (*entity.ServiceEntry, error) {
	query := serviceEntrySelect + ` WHERE se.id = $1`
	e, err := scanServiceEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// Create persiste una entrada de servicio.
func (r *ServiceEntryRepo) Create(e *entity.ServiceEntry) error {
	query := `
		INSERT INTO service_entries
		(id, site, zone, ott, client, advisor, type, equipment_state, equipment, notas, estado, sede_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Site, e.Zone, e.OTT, e.Client, e.Advisor, e.Type, e.EquipmentState,
		e.Equipment, e.Notas, e.Estado, e.SedeID, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service entry: %w", err)
	}
	return nil
}

// Update actualiza una entrada completa.
func (r *ServiceEntryRepo) Update(e *entity.ServiceEntry) error {
	query := `
		UPDATE service_entries
		SET site = $2, zone = $3, ott = $4, client = $5, advisor = $6, type = $7,
		    equipment_state = $8, equipment = $9, notas = $10, estado = $11,
		    sede_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Site, e.Zone, e.OTT, e.Client, e.Advisor, e.Type, e.EquipmentState,
		e.Equipment, e.Notas, e.Estado, e.SedeID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada; sus asignaciones caen por ON DELETE CASCADE.
func (r *ServiceEntryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM service_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanServiceEntry(row pgx.Row) (*entity.ServiceEntry, error) {
	var e entity.ServiceEntry
	err := row.Scan(
		&e.ID, &e.Site, &e.Zone, &e.OTT, &e.Client, &e.Advisor, &e.Type,
		&e.EquipmentState, &e.Equipment, &e.Notas, &e.Estado, &e.SedeID,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&e.SedeNombre, &e.SedeCodigo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan service entry: %w", err)
	}
	return &e, nil
}
