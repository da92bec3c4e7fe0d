package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// SedeRepository define el puerto de persistencia para Sede.
// Create y Update devuelven domain.ErrDuplicate si el código ya existe.
type SedeRepository interface {
	List(activa *bool) ([]*entity.Sede, error)
	GetByID(id string) (*entity.Sede, error)
	Create(sede *entity.Sede) error
	Update(sede *entity.Sede) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(id string) error
}
