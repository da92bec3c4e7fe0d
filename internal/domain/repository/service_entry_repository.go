package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// ServiceEntryRepository define el puerto de persistencia para ServiceEntry.
// Los listados y el get por id resuelven sede_nombre/sede_codigo vía join.
type ServiceEntryRepository interface {
	List(sedeID, estado *string) ([]*entity.ServiceEntry, error)
	GetByID(id string) (*entity.ServiceEntry, error)
	Create(e *entity.ServiceEntry) error
	Update(e *entity.ServiceEntry) error
	Delete(id string) error
}
