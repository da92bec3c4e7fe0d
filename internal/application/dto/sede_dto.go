package dto

import "time"

// CreateSedeRequest entrada para crear una sede. Activa default true.
type CreateSedeRequest struct {
	Nombre    string `json:"nombre"`
	Codigo    string `json:"codigo"`
	Ciudad    string `json:"ciudad"`
	Direccion string `json:"direccion"`
	Activa    *bool  `json:"activa"`
}

// UpdateSedeRequest patch parcial: solo los campos presentes se aplican.
type UpdateSedeRequest struct {
	Nombre    *string `json:"nombre"`
	Codigo    *string `json:"codigo"`
	Ciudad    *string `json:"ciudad"`
	Direccion *string `json:"direccion"`
	Activa    *bool   `json:"activa"`
}

// SedeResponse salida de una sede.
type SedeResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Codigo    string    `json:"codigo"`
	Ciudad    string    `json:"ciudad"`
	Direccion string    `json:"direccion"`
	Activa    bool      `json:"activa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
