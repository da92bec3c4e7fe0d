package dto

import "time"

// CreateResourceRequest entrada para crear un recurso. Available default true.
// SedeID se ignora cuando type == phase (las fases son globales).
type CreateResourceRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Available *bool   `json:"available"`
	SedeID    *string `json:"sede_id"`
}

// UpdateResourceRequest patch parcial. SedeID es tri-estado: ausente
// preserva la sede actual, null explícito la limpia, valor la reemplaza.
// Si el tipo final es phase, la sede queda en null sin importar el body.
type UpdateResourceRequest struct {
	Name      *string    `json:"name"`
	Type      *string    `json:"type"`
	Available *bool      `json:"available"`
	SedeID    NullableID `json:"sede_id"`
}

// ResourceResponse salida de un recurso.
type ResourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Available bool      `json:"available"`
	SedeID    *string   `json:"sede_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
