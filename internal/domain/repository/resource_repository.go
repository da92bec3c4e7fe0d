package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// ResourceRepository define el puerto de persistencia para Resource.
type ResourceRepository interface {
	// List filtra por sede (incluyendo fases, que son globales) y/o tipo.
	List(sedeID, resourceType *string) ([]*entity.Resource, error)
	GetByID(id string) (*entity.Resource, error)
	Create(resource *entity.Resource) error
	Update(resource *entity.Resource) error
	Delete(id string) error
}
