package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

func TestSedeCreate_ActivaDefaultTrue(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())

	out, err := uc.Create(dto.CreateSedeRequest{Nombre: "Bogotá Norte", Codigo: "BOG-N"})
	require.NoError(t, err)
	assert.True(t, out.Activa)
}

// El código de sede es único: repetirlo es un error de duplicado.
func TestSedeCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())

	_, err := uc.Create(dto.CreateSedeRequest{Nombre: "Bogotá Norte", Codigo: "BOG-N"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateSedeRequest{Nombre: "Otra", Codigo: "BOG-N"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSedeUpdate_PatchParcial(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())
	created, err := uc.Create(dto.CreateSedeRequest{
		Nombre: "Bogotá Norte",
		Codigo: "BOG-N",
		Ciudad: "Bogotá",
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateSedeRequest{Nombre: strPtr("Bogotá Calle 100")})
	require.NoError(t, err)
	assert.Equal(t, "Bogotá Calle 100", out.Nombre)
	assert.Equal(t, "BOG-N", out.Codigo)
	assert.Equal(t, "Bogotá", out.Ciudad)
}

func TestSedeUpdate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())
	_, err := uc.Create(dto.CreateSedeRequest{Nombre: "Norte", Codigo: "BOG-N"})
	require.NoError(t, err)
	sur, err := uc.Create(dto.CreateSedeRequest{Nombre: "Sur", Codigo: "BOG-S"})
	require.NoError(t, err)

	_, err = uc.Update(sur.ID, dto.UpdateSedeRequest{Codigo: strPtr("BOG-N")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSedeList_FiltraPorActiva(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())
	inactiva := false
	_, err := uc.Create(dto.CreateSedeRequest{Nombre: "Norte", Codigo: "BOG-N"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateSedeRequest{Nombre: "Cerrada", Codigo: "BOG-X", Activa: &inactiva})
	require.NoError(t, err)

	activas := true
	out, err := uc.List(&activas)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "BOG-N", out[0].Codigo)
}

func TestSedeDelete_NoExiste(t *testing.T) {
	uc := usecase.NewSedeUseCase(newFakeSedeRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
