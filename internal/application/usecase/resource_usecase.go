package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// ResourceTxRunner ejecuta el callback con un repo de recursos atado a una
// transacción. El patch de recursos decide la sede final a partir de la
// fila actual; la tx cierra la ventana entre esa lectura y el update.
type ResourceTxRunner interface {
	RunResource(ctx context.Context, fn func(resources repository.ResourceRepository) error) error
}

// ResourceUseCase casos de uso CRUD para recursos del calendario.
type ResourceUseCase struct {
	repo repository.ResourceRepository
	tx   ResourceTxRunner
}

// NewResourceUseCase construye el caso de uso.
func NewResourceUseCase(repo repository.ResourceRepository, tx ResourceTxRunner) *ResourceUseCase {
	return &ResourceUseCase{repo: repo, tx: tx}
}

// List lista recursos filtrando por sede (más fases globales) y/o tipo.
func (uc *ResourceUseCase) List(sedeID, resourceType *string) ([]dto.ResourceResponse, error) {
	list, err := uc.repo.List(sedeID, resourceType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResourceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResourceResponse(r))
	}
	return items, nil
}

// GetByID obtiene un recurso por ID, o nil si no existe.
func (uc *ResourceUseCase) GetByID(id string) (*dto.ResourceResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toResourceResponse(r), nil
}

// Create crea un recurso. Available default true; si el tipo es phase la
// sede se fuerza a null sin importar lo que venga en el body.
func (uc *ResourceUseCase) Create(in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	if !entity.ValidResourceType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	sedeID := normalizeSedeID(in.SedeID)
	if in.Type == entity.ResourcePhase {
		sedeID = nil
	}
	now := time.Now()
	resource := &entity.Resource{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Available: available,
		SedeID:    sedeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(resource); err != nil {
		return nil, err
	}
	return toResourceResponse(resource), nil
}

// Update aplica un patch dentro de una transacción. La sede final se decide
// con el tipo resultante: phase fuerza null; si sede_id vino en el body
// (incluso null explícito) se honra; ausente conserva la actual.
func (uc *ResourceUseCase) Update(ctx context.Context, id string, in dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	if in.Type != nil && !entity.ValidResourceType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ResourceResponse
	err := uc.tx.RunResource(ctx, func(resources repository.ResourceRepository) error {
		resource, err := resources.GetByID(id)
		if err != nil {
			return err
		}
		if resource == nil {
			return nil // out queda nil => 404
		}
		if in.Name != nil {
			resource.Name = *in.Name
		}
		if in.Type != nil {
			resource.Type = *in.Type
		}
		if in.Available != nil {
			resource.Available = *in.Available
		}
		switch {
		case resource.IsPhase():
			resource.SedeID = nil
		case in.SedeID.Set:
			resource.SedeID = normalizeSedeID(in.SedeID.Value)
		}
		resource.UpdatedAt = time.Now()
		if err := resources.Update(resource); err != nil {
			return err
		}
		out = toResourceResponse(resource)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un recurso por ID.
func (uc *ResourceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// normalizeSedeID trata el string vacío como null.
func normalizeSedeID(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toResourceResponse(r *entity.Resource) *dto.ResourceResponse {
	if r == nil {
		return nil
	}
	return &dto.ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Available: r.Available,
		SedeID:    r.SedeID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
