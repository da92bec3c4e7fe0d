package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

const (
	entryUUID    = "11111111-1111-1111-1111-111111111111"
	resourceUUID = "22222222-2222-2222-2222-222222222222"
)

func TestAssignmentCreate(t *testing.T) {
	uc := usecase.NewAssignmentUseCase(newFakeAssignmentRepo())

	out, err := uc.Create(dto.CreateAssignmentRequest{
		ServiceEntryID: entryUUID,
		ResourceID:     resourceUUID,
		Date:           calendar.NewDate(2025, time.March, 10),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "2025-03-10", out.Date.String())
}

// La tripleta (entrada, recurso, fecha) es única; repetirla es conflicto.
func TestAssignmentCreate_Duplicada(t *testing.T) {
	uc := usecase.NewAssignmentUseCase(newFakeAssignmentRepo())
	in := dto.CreateAssignmentRequest{
		ServiceEntryID: entryUUID,
		ResourceID:     resourceUUID,
		Date:           calendar.NewDate(2025, time.March, 10),
	}

	_, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El mismo recurso sobre la misma entrada en OTRA fecha sí es válido.
func TestAssignmentCreate_OtraFechaNoEsDuplicada(t *testing.T) {
	uc := usecase.NewAssignmentUseCase(newFakeAssignmentRepo())

	_, err := uc.Create(dto.CreateAssignmentRequest{
		ServiceEntryID: entryUUID,
		ResourceID:     resourceUUID,
		Date:           calendar.NewDate(2025, time.March, 10),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateAssignmentRequest{
		ServiceEntryID: entryUUID,
		ResourceID:     resourceUUID,
		Date:           calendar.NewDate(2025, time.March, 11),
	})
	assert.NoError(t, err)
}

// El error de UUID malformado nombra el campo ofensor y su valor.
func TestAssignmentCreate_UUIDInvalido(t *testing.T) {
	uc := usecase.NewAssignmentUseCase(newFakeAssignmentRepo())
	date := calendar.NewDate(2025, time.March, 10)

	_, err := uc.Create(dto.CreateAssignmentRequest{
		ServiceEntryID: "no-es-uuid",
		ResourceID:     resourceUUID,
		Date:           date,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "service_entry_id")
	assert.Contains(t, err.Error(), "no-es-uuid")

	_, err = uc.Create(dto.CreateAssignmentRequest{
		ServiceEntryID: entryUUID,
		ResourceID:     "tampoco",
		Date:           date,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "resource_id")
	assert.Contains(t, err.Error(), "tampoco")
}

func TestAssignmentList_Filtros(t *testing.T) {
	repo := newFakeAssignmentRepo()
	uc := usecase.NewAssignmentUseCase(repo)

	for day := 10; day <= 14; day++ {
		_, err := uc.Create(dto.CreateAssignmentRequest{
			ServiceEntryID: entryUUID,
			ResourceID:     resourceUUID,
			Date:           calendar.NewDate(2025, time.March, day),
		})
		require.NoError(t, err)
	}

	from := calendar.NewDate(2025, time.March, 11)
	to := calendar.NewDate(2025, time.March, 13)
	out, err := uc.List(repository.AssignmentFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, out, 3, "el rango es inclusivo en ambos extremos")
}

func TestAssignmentDelete_NoExiste(t *testing.T) {
	uc := usecase.NewAssignmentUseCase(newFakeAssignmentRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
