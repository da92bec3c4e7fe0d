package dto

import "time"

// CreateServiceEntryRequest entrada para crear una entrada de servicio.
// Los siete primeros campos son obligatorios; estado default abierto.
type CreateServiceEntryRequest struct {
	Site           string  `json:"site"`
	Zone           string  `json:"zone"`
	OTT            string  `json:"ott"`
	Client         string  `json:"client"`
	Advisor        string  `json:"advisor"`
	Type           string  `json:"type"`
	EquipmentState string  `json:"equipment_state"`
	Equipment      string  `json:"equipment"`
	Notas          string  `json:"notas"`
	Estado         string  `json:"estado"`
	SedeID         *string `json:"sede_id"`
}

// UpdateServiceEntryRequest patch parcial.
type UpdateServiceEntryRequest struct {
	Site           *string `json:"site"`
	Zone           *string `json:"zone"`
	OTT            *string `json:"ott"`
	Client         *string `json:"client"`
	Advisor        *string `json:"advisor"`
	Type           *string `json:"type"`
	EquipmentState *string `json:"equipment_state"`
	Equipment      *string `json:"equipment"`
	Notas          *string `json:"notas"`
	Estado         *string `json:"estado"`
	SedeID         *string `json:"sede_id"`
}

// ServiceEntryResponse salida de una entrada con la sede denormalizada.
type ServiceEntryResponse struct {
	ID             string    `json:"id"`
	Site           string    `json:"site"`
	Zone           string    `json:"zone"`
	OTT            string    `json:"ott"`
	Client         string    `json:"client"`
	Advisor        string    `json:"advisor"`
	Type           string    `json:"type"`
	EquipmentState string    `json:"equipment_state"`
	Equipment      string    `json:"equipment"`
	Notas          string    `json:"notas"`
	Estado         string    `json:"estado"`
	SedeID         *string   `json:"sede_id"`
	SedeNombre     string    `json:"sede_nombre,omitempty"`
	SedeCodigo     string    `json:"sede_codigo,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
