package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// ServiceEntryUseCase casos de uso para entradas de servicio, incluyendo el
// ciclo abierto/cerrado (cerrar manda la entrada al historial; reabrir la
// devuelve al tablero).
type ServiceEntryUseCase struct {
	repo repository.ServiceEntryRepository
}

// NewServiceEntryUseCase construye el caso de uso.
func NewServiceEntryUseCase(repo repository.ServiceEntryRepository) *ServiceEntryUseCase {
	return &ServiceEntryUseCase{repo: repo}
}

// List lista entradas filtrando por sede y/o estado.
func (uc *ServiceEntryUseCase) List(sedeID, estado *string) ([]dto.ServiceEntryResponse, error) {
	list, err := uc.repo.List(sedeID, estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toServiceEntryResponse(e))
	}
	return items, nil
}

// GetByID obtiene una entrada por ID, o nil si no existe.
func (uc *ServiceEntryUseCase) GetByID(id string) (*dto.ServiceEntryResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toServiceEntryResponse(e), nil
}

// Create crea una entrada. Estado default abierto; createdBy viene del token.
func (uc *ServiceEntryUseCase) Create(createdBy string, in dto.CreateServiceEntryRequest) (*dto.ServiceEntryResponse, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoAbierto
	}
	now := time.Now()
	e := &entity.ServiceEntry{
		ID:             uuid.New().String(),
		Site:           in.Site,
		Zone:           in.Zone,
		OTT:            in.OTT,
		Client:         in.Client,
		Advisor:        in.Advisor,
		Type:           in.Type,
		EquipmentState: in.EquipmentState,
		Equipment:      in.Equipment,
		Notas:          in.Notas,
		Estado:         estado,
		SedeID:         normalizeSedeID(in.SedeID),
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return uc.GetByID(e.ID) // relee para resolver sede_nombre/sede_codigo
}

// Update aplica un patch parcial; los campos ausentes conservan su valor.
func (uc *ServiceEntryUseCase) Update(id string, in dto.UpdateServiceEntryRequest) (*dto.ServiceEntryResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	applyString(&e.Site, in.Site)
	applyString(&e.Zone, in.Zone)
	applyString(&e.OTT, in.OTT)
	applyString(&e.Client, in.Client)
	applyString(&e.Advisor, in.Advisor)
	applyString(&e.Type, in.Type)
	applyString(&e.EquipmentState, in.EquipmentState)
	applyString(&e.Equipment, in.Equipment)
	applyString(&e.Notas, in.Notas)
	applyString(&e.Estado, in.Estado)
	if in.SedeID != nil {
		e.SedeID = normalizeSedeID(in.SedeID)
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Close cierra una entrada abierta. Cerrar una ya cerrada -> domain.ErrConflict.
func (uc *ServiceEntryUseCase) Close(id string) (*dto.ServiceEntryResponse, error) {
	return uc.transition(id, entity.EstadoAbierto, entity.EstadoCerrado)
}

// Reopen reabre una entrada cerrada desde el historial. Reabrir una abierta -> domain.ErrConflict.
func (uc *ServiceEntryUseCase) Reopen(id string) (*dto.ServiceEntryResponse, error) {
	return uc.transition(id, entity.EstadoCerrado, entity.EstadoAbierto)
}

func (uc *ServiceEntryUseCase) transition(id, from, to string) (*dto.ServiceEntryResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if e.Estado != from {
		return nil, domain.ErrConflict
	}
	e.Estado = to
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toServiceEntryResponse(e), nil
}

// Delete elimina una entrada por ID.
func (uc *ServiceEntryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// applyString copia el valor solo cuando el campo vino en el patch.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toServiceEntryResponse(e *entity.ServiceEntry) *dto.ServiceEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.ServiceEntryResponse{
		ID:             e.ID,
		Site:           e.Site,
		Zone:           e.Zone,
		OTT:            e.OTT,
		Client:         e.Client,
		Advisor:        e.Advisor,
		Type:           e.Type,
		EquipmentState: e.EquipmentState,
		Equipment:      e.Equipment,
		Notas:          e.Notas,
		Estado:         e.Estado,
		SedeID:         e.SedeID,
		SedeNombre:     e.SedeNombre,
		SedeCodigo:     e.SedeCodigo,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
