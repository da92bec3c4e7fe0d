package entity

import "time"

// QuoteEntry es una cotización pendiente de agendar/entregar.
type QuoteEntry struct {
	ID        string
	Zone      string
	Equipment string
	Client    string
	Notes     string
	Estado    string // abierto, cerrado
	SedeID    *string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
