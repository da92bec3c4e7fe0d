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
	"github.com/serviagenda/agenda-api/internal/domain/entity"
)

const quoteUUID = "33333333-3333-3333-3333-333333333333"

func TestQuoteAssignmentUpsert_StatusDefaultPending(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())

	out, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: quoteUUID,
		Date:         calendar.NewDate(2025, time.March, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPending, out.Status)
}

// Reagendar la misma cotización el mismo día sobreescribe el status en vez
// de fallar; la fila conserva su identidad.
func TestQuoteAssignmentUpsert_MismoDiaSobreescribe(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())
	date := calendar.NewDate(2025, time.March, 10)

	first, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: quoteUUID,
		Date:         date,
		Status:       entity.QuoteStatusScheduled,
	})
	require.NoError(t, err)

	second, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: quoteUUID,
		Date:         date,
		Status:       entity.QuoteStatusDelivered,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "la fila original conserva su id")
	assert.Equal(t, entity.QuoteStatusDelivered, second.Status)
}

func TestQuoteAssignmentUpsert_StatusInvalido(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())

	_, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: quoteUUID,
		Date:         calendar.NewDate(2025, time.March, 10),
		Status:       "enviado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteAssignmentUpsert_UUIDInvalido(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())

	_, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: "no-es-uuid",
		Date:         calendar.NewDate(2025, time.March, 10),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quote_entry_id")
}

func TestQuoteAssignmentUpdateStatus(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())
	created, err := uc.Upsert(dto.UpsertQuoteAssignmentRequest{
		QuoteEntryID: quoteUUID,
		Date:         calendar.NewDate(2025, time.March, 10),
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(created.ID, dto.UpdateQuoteAssignmentRequest{
		Status: entity.QuoteStatusDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusDelivered, out.Status)
}

func TestQuoteAssignmentUpdateStatus_NoExiste(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())

	_, err := uc.UpdateStatus("no-existe", dto.UpdateQuoteAssignmentRequest{
		Status: entity.QuoteStatusDelivered,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteAssignmentUpdateStatus_Invalido(t *testing.T) {
	uc := usecase.NewQuoteAssignmentUseCase(newFakeQuoteAssignmentRepo())

	_, err := uc.UpdateStatus("lo-que-sea", dto.UpdateQuoteAssignmentRequest{Status: "enviado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
