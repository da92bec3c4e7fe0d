package entity

import (
	"time"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// PendingItem es un pendiente con responsable y fecha límite.
type PendingItem struct {
	ID           string
	Item         string
	Date         calendar.Date
	AssignedTo   string
	DueDate      calendar.Date
	Estado       string // abierto, cerrado
	Observations string
	SedeID       *string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
