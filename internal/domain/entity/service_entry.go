package entity

import "time"

// Tipos de trabajo de una entrada de servicio.
const (
	EntryService     = "Service"
	EntryPreparation = "Preparation"
	EntryWarranty    = "Warranty"
)

// Estados de equipo.
const (
	EquipmentNew  = "New"
	EquipmentUsed = "Used"
)

// Estados de ciclo de vida (compartidos por entradas, cotizaciones y pendientes).
const (
	EstadoAbierto = "abierto"
	EstadoCerrado = "cerrado"
)

// ServiceEntry es un trabajo agendable (servicio, alistamiento o garantía).
type ServiceEntry struct {
	ID             string
	Site           string
	Zone           string
	OTT            string
	Client         string
	Advisor        string
	Type           string // Service, Preparation, Warranty
	EquipmentState string // New, Used
	Equipment      string
	Notas          string
	Estado         string // abierto, cerrado
	SedeID         *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Denormalizados del join con sedes en listados.
	SedeNombre string
	SedeCodigo string
}
