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

// QuoteAssignmentUseCase casos de uso para el agendamiento de cotizaciones.
type QuoteAssignmentUseCase struct {
	repo repository.QuoteAssignmentRepository
}

// NewQuoteAssignmentUseCase construye el caso de uso.
func NewQuoteAssignmentUseCase(repo repository.QuoteAssignmentRepository) *QuoteAssignmentUseCase {
	return &QuoteAssignmentUseCase{repo: repo}
}

// List lista asignaciones de cotización con filtros opcionales.
func (uc *QuoteAssignmentUseCase) List(f repository.QuoteAssignmentFilter) ([]dto.QuoteAssignmentResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteAssignmentResponse, 0, len(list))
	for _, qa := range list {
		items = append(items, *toQuoteAssignmentResponse(qa))
	}
	return items, nil
}

// Upsert agenda la cotización en la fecha dada. Si ya estaba agendada ese
// día, sobreescribe el status en vez de fallar; siempre devuelve la fila
// vigente. Status vacío toma "pending".
func (uc *QuoteAssignmentUseCase) Upsert(in dto.UpsertQuoteAssignmentRequest) (*dto.QuoteAssignmentResponse, error) {
	if err := validateUUID("quote_entry_id", in.QuoteEntryID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.QuoteStatusPending
	}
	if !entity.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser scheduled, pending o delivered", domain.ErrInvalidInput)
	}
	now := time.Now()
	qa := &entity.QuoteAssignment{
		ID:           uuid.New().String(),
		QuoteEntryID: in.QuoteEntryID,
		Date:         in.Date,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Upsert(qa); err != nil {
		return nil, err
	}
	return toQuoteAssignmentResponse(qa), nil
}

// UpdateStatus cambia el status de una asignación existente.
func (uc *QuoteAssignmentUseCase) UpdateStatus(id string, in dto.UpdateQuoteAssignmentRequest) (*dto.QuoteAssignmentResponse, error) {
	if !entity.ValidQuoteStatus(in.Status) {
		return nil, fmt.Errorf("%w: status debe ser scheduled, pending o delivered", domain.ErrInvalidInput)
	}
	qa, err := uc.repo.UpdateStatus(id, in.Status)
	if err != nil {
		return nil, err
	}
	if qa == nil {
		return nil, domain.ErrNotFound
	}
	return toQuoteAssignmentResponse(qa), nil
}

// Delete desagenda la cotización de esa fecha.
func (uc *QuoteAssignmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toQuoteAssignmentResponse(qa *entity.QuoteAssignment) *dto.QuoteAssignmentResponse {
	if qa == nil {
		return nil
	}
	return &dto.QuoteAssignmentResponse{
		ID:           qa.ID,
		QuoteEntryID: qa.QuoteEntryID,
		Date:         qa.Date,
		Status:       qa.Status,
		CreatedAt:    qa.CreatedAt,
		UpdatedAt:    qa.UpdatedAt,
	}
}
