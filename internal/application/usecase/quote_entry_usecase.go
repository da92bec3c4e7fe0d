package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// QuoteEntryUseCase casos de uso para cotizaciones.
type QuoteEntryUseCase struct {
	repo repository.QuoteEntryRepository
}

// NewQuoteEntryUseCase construye el caso de uso.
func NewQuoteEntryUseCase(repo repository.QuoteEntryRepository) *QuoteEntryUseCase {
	return &QuoteEntryUseCase{repo: repo}
}

// List lista cotizaciones filtrando por sede y/o estado.
func (uc *QuoteEntryUseCase) List(sedeID, estado *string) ([]dto.QuoteEntryResponse, error) {
	list, err := uc.repo.List(sedeID, estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteEntryResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteEntryResponse(q))
	}
	return items, nil
}

// GetByID obtiene una cotización por ID, o nil si no existe.
func (uc *QuoteEntryUseCase) GetByID(id string) (*dto.QuoteEntryResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuoteEntryResponse(q), nil
}

// Create crea una cotización. Estado default abierto.
func (uc *QuoteEntryUseCase) Create(createdBy string, in dto.CreateQuoteEntryRequest) (*dto.QuoteEntryResponse, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoAbierto
	}
	now := time.Now()
	q := &entity.QuoteEntry{
		ID:        uuid.New().String(),
		Zone:      in.Zone,
		Equipment: in.Equipment,
		Client:    in.Client,
		Notes:     in.Notes,
		Estado:    estado,
		SedeID:    normalizeSedeID(in.SedeID),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(q); err != nil {
		return nil, err
	}
	return toQuoteEntryResponse(q), nil
}

// Update aplica un patch parcial; los campos ausentes conservan su valor.
func (uc *QuoteEntryUseCase) Update(id string, in dto.UpdateQuoteEntryRequest) (*dto.QuoteEntryResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	applyString(&q.Zone, in.Zone)
	applyString(&q.Equipment, in.Equipment)
	applyString(&q.Client, in.Client)
	applyString(&q.Notes, in.Notes)
	applyString(&q.Estado, in.Estado)
	if in.SedeID != nil {
		q.SedeID = normalizeSedeID(in.SedeID)
	}
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	return toQuoteEntryResponse(q), nil
}

// Close cierra una cotización abierta; cerrada -> domain.ErrConflict.
func (uc *QuoteEntryUseCase) Close(id string) (*dto.QuoteEntryResponse, error) {
	return uc.transition(id, entity.EstadoAbierto, entity.EstadoCerrado)
}

// Reopen reabre una cotización cerrada; abierta -> domain.ErrConflict.
func (uc *QuoteEntryUseCase) Reopen(id string) (*dto.QuoteEntryResponse, error) {
	return uc.transition(id, entity.EstadoCerrado, entity.EstadoAbierto)
}

func (uc *QuoteEntryUseCase) transition(id, from, to string) (*dto.QuoteEntryResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	if q.Estado != from {
		return nil, domain.ErrConflict
	}
	q.Estado = to
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	return toQuoteEntryResponse(q), nil
}

// Delete elimina una cotización por ID.
func (uc *QuoteEntryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toQuoteEntryResponse(q *entity.QuoteEntry) *dto.QuoteEntryResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteEntryResponse{
		ID:        q.ID,
		Zone:      q.Zone,
		Equipment: q.Equipment,
		Client:    q.Client,
		Notes:     q.Notes,
		Estado:    q.Estado,
		SedeID:    q.SedeID,
		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
