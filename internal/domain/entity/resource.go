package entity

import "time"

// Tipos válidos para Resource.
const (
	ResourceTechnician    = "technician"
	ResourceAdministrator = "administrator"
	ResourcePhase         = "phase"
	ResourceActivity      = "activity"
)

// ValidResourceType reporta si t es uno de los tipos conocidos.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTechnician, ResourceAdministrator, ResourcePhase, ResourceActivity:
		return true
	}
	return false
}

// Resource es un técnico, administrador, fase o actividad asignable a una
// fecha del calendario. Invariante: las fases son globales, SedeID siempre
// nil cuando Type == phase.
type Resource struct {
	ID        string
	Name      string
	Type      string
	Available bool
	SedeID    *string // nil para fases y recursos sin sede
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPhase reporta si el recurso es una fase (global, sin sede).
func (r *Resource) IsPhase() bool { return r.Type == ResourcePhase }
