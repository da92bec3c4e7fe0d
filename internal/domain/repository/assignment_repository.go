package repository

import (
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
)

// AssignmentFilter filtros opcionales de listado; nil = sin filtrar.
type AssignmentFilter struct {
	ServiceEntryID *string
	ResourceID     *string
	Date           *calendar.Date
	From           *calendar.Date // rango inclusivo para el tablero
	To             *calendar.Date
}

// AssignmentRepository define el puerto de persistencia para Assignment.
type AssignmentRepository interface {
	List(f AssignmentFilter) ([]*entity.Assignment, error)
	// Create inserta con ON CONFLICT DO NOTHING; devuelve domain.ErrDuplicate
	// cuando la tripleta (entrada, recurso, fecha) ya existe.
	Create(a *entity.Assignment) error
	Delete(id string) error
}

// QuoteAssignmentFilter filtros opcionales de listado; nil = sin filtrar.
type QuoteAssignmentFilter struct {
	QuoteEntryID *string
	Date         *calendar.Date
	Status       *string
	From         *calendar.Date
	To           *calendar.Date
}

// QuoteAssignmentRepository define el puerto de persistencia para QuoteAssignment.
type QuoteAssignmentRepository interface {
	List(f QuoteAssignmentFilter) ([]*entity.QuoteAssignment, error)
	// Upsert inserta o, si (cotización, fecha) ya existe, sobreescribe el
	// status; en ambos casos rellena a con la fila resultante.
	Upsert(a *entity.QuoteAssignment) error
	// UpdateStatus cambia el status y devuelve la fila, o nil si no existe.
	UpdateStatus(id, status string) (*entity.QuoteAssignment, error)
	Delete(id string) error
}
