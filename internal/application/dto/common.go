package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación de operaciones sin cuerpo (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// NullableID distingue los tres estados de un campo id en un patch:
// ausente del body, presente con null explícito, o presente con valor.
// Un puntero solo no alcanza: nil significaría ambas cosas a la vez.
type NullableID struct {
	Set   bool    // true si el campo vino en el body
	Value *string // nil = null explícito
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el body.
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
