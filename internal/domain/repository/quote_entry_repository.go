package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// QuoteEntryRepository define el puerto de persistencia para QuoteEntry.
type QuoteEntryRepository interface {
	List(sedeID, estado *string) ([]*entity.QuoteEntry, error)
	GetByID(id string) (*entity.QuoteEntry, error)
	Create(q *entity.QuoteEntry) error
	Update(q *entity.QuoteEntry) error
	Delete(id string) error
}
