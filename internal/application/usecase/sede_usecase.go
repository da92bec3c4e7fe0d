package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// SedeUseCase casos de uso CRUD para sedes.
type SedeUseCase struct {
	repo repository.SedeRepository
}

// NewSedeUseCase construye el caso de uso.
func NewSedeUseCase(repo repository.SedeRepository) *SedeUseCase {
	return &SedeUseCase{repo: repo}
}

// List lista sedes, opcionalmente filtradas por activa.
func (uc *SedeUseCase) List(activa *bool) ([]dto.SedeResponse, error) {
	list, err := uc.repo.List(activa)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SedeResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSedeResponse(s))
	}
	return items, nil
}

// GetByID obtiene una sede por ID, o nil si no existe.
func (uc *SedeUseCase) GetByID(id string) (*dto.SedeResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSedeResponse(s), nil
}

// Create crea una sede. Activa default true.
func (uc *SedeUseCase) Create(in dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	activa := true
	if in.Activa != nil {
		activa = *in.Activa
	}
	now := time.Now()
	sede := &entity.Sede{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Codigo:    in.Codigo,
		Ciudad:    in.Ciudad,
		Direccion: in.Direccion,
		Activa:    activa,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

// Update aplica un patch parcial; los campos ausentes conservan su valor.
func (uc *SedeUseCase) Update(id string, in dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		sede.Nombre = *in.Nombre
	}
	if in.Codigo != nil {
		sede.Codigo = *in.Codigo
	}
	if in.Ciudad != nil {
		sede.Ciudad = *in.Ciudad
	}
	if in.Direccion != nil {
		sede.Direccion = *in.Direccion
	}
	if in.Activa != nil {
		sede.Activa = *in.Activa
	}
	sede.UpdatedAt = time.Now()
	if err := uc.repo.Update(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

// Delete elimina una sede por ID.
func (uc *SedeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSedeResponse(s *entity.Sede) *dto.SedeResponse {
	if s == nil {
		return nil
	}
	return &dto.SedeResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Codigo:    s.Codigo,
		Ciudad:    s.Ciudad,
		Direccion: s.Direccion,
		Activa:    s.Activa,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
