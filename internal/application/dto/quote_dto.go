package dto

import (
	"time"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// CreateQuoteEntryRequest entrada para crear una cotización.
type CreateQuoteEntryRequest struct {
	Zone      string  `json:"zone"`
	Equipment string  `json:"equipment"`
	Client    string  `json:"client"`
	Notes     string  `json:"notes"`
	Estado    string  `json:"estado"`
	SedeID    *string `json:"sede_id"`
}

// UpdateQuoteEntryRequest patch parcial.
type UpdateQuoteEntryRequest struct {
	Zone      *string `json:"zone"`
	Equipment *string `json:"equipment"`
	Client    *string `json:"client"`
	Notes     *string `json:"notes"`
	Estado    *string `json:"estado"`
	SedeID    *string `json:"sede_id"`
}

// QuoteEntryResponse salida de una cotización.
type QuoteEntryResponse struct {
	ID        string    `json:"id"`
	Zone      string    `json:"zone"`
	Equipment string    `json:"equipment"`
	Client    string    `json:"client"`
	Notes     string    `json:"notes"`
	Estado    string    `json:"estado"`
	SedeID    *string   `json:"sede_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertQuoteAssignmentRequest agenda una cotización en una fecha; si ya
// estaba agendada ese día, sobreescribe el status. Status default pending.
type UpsertQuoteAssignmentRequest struct {
	QuoteEntryID string        `json:"quote_entry_id"`
	Date         calendar.Date `json:"date"`
	Status       string        `json:"status"`
}

// UpdateQuoteAssignmentRequest cambia el status de una asignación existente.
type UpdateQuoteAssignmentRequest struct {
	Status string `json:"status"`
}

// QuoteAssignmentResponse salida de una asignación de cotización.
type QuoteAssignmentResponse struct {
	ID           string        `json:"id"`
	QuoteEntryID string        `json:"quote_entry_id"`
	Date         calendar.Date `json:"date"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
