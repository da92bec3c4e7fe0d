package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// PendingItemUseCase casos de uso para pendientes.
type PendingItemUseCase struct {
	repo repository.PendingItemRepository
}

// NewPendingItemUseCase construye el caso de uso.
func NewPendingItemUseCase(repo repository.PendingItemRepository) *PendingItemUseCase {
	return &PendingItemUseCase{repo: repo}
}

// List lista pendientes filtrando por sede y/o estado.
func (uc *PendingItemUseCase) List(sedeID, estado *string) ([]dto.PendingItemResponse, error) {
	list, err := uc.repo.List(sedeID, estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PendingItemResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPendingItemResponse(p))
	}
	return items, nil
}

// GetByID obtiene un pendiente por ID, o nil si no existe.
func (uc *PendingItemUseCase) GetByID(id string) (*dto.PendingItemResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPendingItemResponse(p), nil
}

// Create crea un pendiente. Estado default abierto.
func (uc *PendingItemUseCase) Create(createdBy string, in dto.CreatePendingItemRequest) (*dto.PendingItemResponse, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoAbierto
	}
	now := time.Now()
	p := &entity.PendingItem{
		ID:           uuid.New().String(),
		Item:         in.Item,
		Date:         in.Date,
		AssignedTo:   in.AssignedTo,
		DueDate:      in.DueDate,
		Estado:       estado,
		Observations: in.Observations,
		SedeID:       normalizeSedeID(in.SedeID),
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPendingItemResponse(p), nil
}

// Update aplica un patch parcial; los campos ausentes conservan su valor.
func (uc *PendingItemUseCase) Update(id string, in dto.UpdatePendingItemRequest) (*dto.PendingItemResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	applyString(&p.Item, in.Item)
	applyString(&p.AssignedTo, in.AssignedTo)
	applyString(&p.Estado, in.Estado)
	applyString(&p.Observations, in.Observations)
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.DueDate != nil {
		p.DueDate = *in.DueDate
	}
	if in.SedeID != nil {
		p.SedeID = normalizeSedeID(in.SedeID)
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPendingItemResponse(p), nil
}

// Delete elimina un pendiente por ID.
func (uc *PendingItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPendingItemResponse(p *entity.PendingItem) *dto.PendingItemResponse {
	if p == nil {
		return nil
	}
	return &dto.PendingItemResponse{
		ID:           p.ID,
		Item:         p.Item,
		Date:         p.Date,
		AssignedTo:   p.AssignedTo,
		DueDate:      p.DueDate,
		Estado:       p.Estado,
		Observations: p.Observations,
		SedeID:       p.SedeID,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
