package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// PendingItemRepository define el puerto de persistencia para PendingItem.
// El listado ordena abiertos primero, luego created_at DESC y date DESC.
type PendingItemRepository interface {
	List(sedeID, estado *string) ([]*entity.PendingItem, error)
	GetByID(id string) (*entity.PendingItem, error)
	Create(p *entity.PendingItem) error
	Update(p *entity.PendingItem) error
	Delete(id string) error
}
