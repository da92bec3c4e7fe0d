package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/entity"
)

func createEntry(t *testing.T, uc *usecase.ServiceEntryUseCase) *dto.ServiceEntryResponse {
	t.Helper()
	out, err := uc.Create("user-1", dto.CreateServiceEntryRequest{
		Site:           "Taller Norte",
		Zone:           "norte",
		OTT:            "OTT-1001",
		Client:         "ACME S.A.",
		Advisor:        "Laura",
		Type:           entity.EntryService,
		EquipmentState: entity.EquipmentUsed,
		Notas:          "revisión general",
	})
	require.NoError(t, err)
	return out
}

func TestServiceEntryCreate_EstadoDefaultAbierto(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())

	out := createEntry(t, uc)
	assert.Equal(t, entity.EstadoAbierto, out.Estado)
	assert.Equal(t, "user-1", out.CreatedBy)
}

// Los campos ausentes del patch conservan su valor.
func TestServiceEntryUpdate_PatchParcial(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())
	created := createEntry(t, uc)

	out, err := uc.Update(created.ID, dto.UpdateServiceEntryRequest{
		Client: strPtr("ACME Internacional"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME Internacional", out.Client)
	assert.Equal(t, created.Zone, out.Zone)
	assert.Equal(t, created.OTT, out.OTT)
	assert.Equal(t, created.Notas, out.Notas)
}

func TestServiceEntryUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())

	out, err := uc.Update("no-existe", dto.UpdateServiceEntryRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestServiceEntryClose_Reopen(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())
	created := createEntry(t, uc)

	closed, err := uc.Close(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCerrado, closed.Estado)

	reopened, err := uc.Reopen(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAbierto, reopened.Estado)
}

// Cerrar dos veces, o reabrir una entrada abierta, es un conflicto de estado.
func TestServiceEntryClose_YaCerrada(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())
	created := createEntry(t, uc)

	_, err := uc.Close(created.ID)
	require.NoError(t, err)

	_, err = uc.Close(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestServiceEntryReopen_YaAbierta(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())
	created := createEntry(t, uc)

	_, err := uc.Reopen(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Las cerradas salen del tablero pero siguen disponibles como historial.
func TestServiceEntryList_FiltraPorEstado(t *testing.T) {
	uc := usecase.NewServiceEntryUseCase(newFakeServiceEntryRepo())
	a := createEntry(t, uc)
	createEntry(t, uc)

	_, err := uc.Close(a.ID)
	require.NoError(t, err)

	abiertas, err := uc.List(nil, strPtr(entity.EstadoAbierto))
	require.NoError(t, err)
	assert.Len(t, abiertas, 1)

	cerradas, err := uc.List(nil, strPtr(entity.EstadoCerrado))
	require.NoError(t, err)
	require.Len(t, cerradas, 1)
	assert.Equal(t, a.ID, cerradas[0].ID)
}
