package dto

import (
	"time"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// CreateAssignmentRequest coloca un recurso sobre una entrada en una fecha.
// Ambos ids deben ser UUIDs bien formados.
type CreateAssignmentRequest struct {
	ServiceEntryID string        `json:"service_entry_id"`
	ResourceID     string        `json:"resource_id"`
	Date           calendar.Date `json:"date"`
}

// AssignmentResponse salida de una asignación.
type AssignmentResponse struct {
	ID             string        `json:"id"`
	ServiceEntryID string        `json:"service_entry_id"`
	ResourceID     string        `json:"resource_id"`
	Date           calendar.Date `json:"date"`
	CreatedAt      time.Time     `json:"created_at"`
}
