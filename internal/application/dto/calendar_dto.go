package dto

import "github.com/serviagenda/agenda-api/internal/domain/calendar"

// ServiceBoardResponse tablero de servicios: días visibles de la vista y
// entradas abiertas con sus asignaciones agrupadas por día.
type ServiceBoardResponse struct {
	View    calendar.ViewMode   `json:"view"`
	Days    []calendar.Date     `json:"days"`
	Entries []ServiceBoardEntry `json:"entries"`
}

// ServiceBoardEntry una fila del tablero de servicios.
type ServiceBoardEntry struct {
	Entry ServiceEntryResponse         `json:"entry"`
	Cells map[string][]BoardAssignment `json:"cells"` // clave: yyyy-MM-dd
}

// BoardAssignment asignación resuelta con su recurso, lista para pintar.
type BoardAssignment struct {
	AssignmentID string            `json:"assignment_id"`
	Resource     *ResourceResponse `json:"resource,omitempty"`
}

// QuoteBoardResponse tablero de cotizaciones.
type QuoteBoardResponse struct {
	View    calendar.ViewMode `json:"view"`
	Days    []calendar.Date   `json:"days"`
	Entries []QuoteBoardEntry `json:"entries"`
}

// QuoteBoardEntry una fila del tablero de cotizaciones: a lo sumo una
// asignación (con status) por día.
type QuoteBoardEntry struct {
	Entry QuoteEntryResponse                 `json:"entry"`
	Cells map[string]QuoteAssignmentResponse `json:"cells"` // clave: yyyy-MM-dd
}
