package dto

import (
	"time"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// CreatePendingItemRequest entrada para crear un pendiente.
// item, date, assigned_to y due_date son obligatorios.
type CreatePendingItemRequest struct {
	Item         string        `json:"item"`
	Date         calendar.Date `json:"date"`
	AssignedTo   string        `json:"assigned_to"`
	DueDate      calendar.Date `json:"due_date"`
	Estado       string        `json:"estado"`
	Observations string        `json:"observations"`
	SedeID       *string       `json:"sede_id"`
}

// UpdatePendingItemRequest patch parcial.
type UpdatePendingItemRequest struct {
	Item         *string        `json:"item"`
	Date         *calendar.Date `json:"date"`
	AssignedTo   *string        `json:"assigned_to"`
	DueDate      *calendar.Date `json:"due_date"`
	Estado       *string        `json:"estado"`
	Observations *string        `json:"observations"`
	SedeID       *string        `json:"sede_id"`
}

// PendingItemResponse salida de un pendiente.
type PendingItemResponse struct {
	ID           string        `json:"id"`
	Item         string        `json:"item"`
	Date         calendar.Date `json:"date"`
	AssignedTo   string        `json:"assigned_to"`
	DueDate      calendar.Date `json:"due_date"`
	Estado       string        `json:"estado"`
	Observations string        `json:"observations"`
	SedeID       *string       `json:"sede_id"`
	CreatedBy    string        `json:"created_by"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
