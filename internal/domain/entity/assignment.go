package entity

import (
	"time"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// Assignment coloca un recurso sobre una entrada de servicio en una fecha
// del calendario. Invariante: única por (service_entry_id, resource_id, date).
type Assignment struct {
	ID             string
	ServiceEntryID string
	ResourceID     string
	Date           calendar.Date
	CreatedAt      time.Time
}

// Estados válidos para QuoteAssignment.
const (
	QuoteStatusScheduled = "scheduled"
	QuoteStatusPending   = "pending"
	QuoteStatusDelivered = "delivered"
)

// ValidQuoteStatus reporta si s es uno de los estados conocidos.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusScheduled, QuoteStatusPending, QuoteStatusDelivered:
		return true
	}
	return false
}

// QuoteAssignment agenda una cotización en una fecha. Única por
// (quote_entry_id, date); un POST repetido sobreescribe el status.
type QuoteAssignment struct {
	ID           string
	QuoteEntryID string
	Date         calendar.Date
	Status       string // scheduled, pending, delivered
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
