package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// AssignmentUseCase casos de uso para asignaciones recurso-entrada-fecha.
type AssignmentUseCase struct {
	repo repository.AssignmentRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(repo repository.AssignmentRepository) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo}
}

// List lista asignaciones con filtros opcionales, fecha ascendente.
func (uc *AssignmentUseCase) List(f repository.AssignmentFilter) ([]dto.AssignmentResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssignmentResponse(a))
	}
	return items, nil
}

// Create crea la asignación (entrada, recurso, fecha). Los ids se validan
// como UUID antes de tocar la base; la tripleta repetida -> domain.ErrDuplicate.
func (uc *AssignmentUseCase) Create(in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if err := validateUUID("service_entry_id", in.ServiceEntryID); err != nil {
		return nil, err
	}
	if err := validateUUID("resource_id", in.ResourceID); err != nil {
		return nil, err
	}
	a := &entity.Assignment{
		ID:             uuid.New().String(),
		ServiceEntryID: in.ServiceEntryID,
		ResourceID:     in.ResourceID,
		Date:           in.Date,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// Delete elimina una asignación por ID.
func (uc *AssignmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// validateUUID envuelve domain.ErrInvalidInput con el campo ofensor en el mensaje.
func validateUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: %s no es un UUID válido: %s", domain.ErrInvalidInput, field, value)
	}
	return nil
}

func toAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:             a.ID,
		ServiceEntryID: a.ServiceEntryID,
		ResourceID:     a.ResourceID,
		Date:           a.Date,
		CreatedAt:      a.CreatedAt,
	}
}
