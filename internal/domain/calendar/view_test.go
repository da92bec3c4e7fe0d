package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

func TestParseViewMode(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		mode, err := calendar.ParseViewMode(s)
		require.NoError(t, err)
		assert.Equal(t, calendar.ViewMode(s), mode)
	}
	_, err := calendar.ParseViewMode("year")
	assert.Error(t, err)
}

func TestVisibleDays_Dia(t *testing.T) {
	anchor := calendar.NewDate(2025, time.March, 12)
	days := calendar.VisibleDays(calendar.ViewDay, anchor)
	assert.Equal(t, []calendar.Date{anchor}, days)
}

// La semana del tablero va de lunes a sábado: seis días, nunca domingo.
func TestVisibleDays_Semana(t *testing.T) {
	// miércoles 2025-03-12 -> semana del lunes 2025-03-10
	days := calendar.VisibleDays(calendar.ViewWeek, calendar.NewDate(2025, time.March, 12))
	require.Len(t, days, 6)
	assert.Equal(t, calendar.NewDate(2025, time.March, 10), days[0])
	assert.Equal(t, calendar.NewDate(2025, time.March, 15), days[5])
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

// Un domingo como ancla cae en la semana que empieza el lunes anterior.
func TestVisibleDays_Semana_AnclaDomingo(t *testing.T) {
	days := calendar.VisibleDays(calendar.ViewWeek, calendar.NewDate(2025, time.March, 16))
	require.Len(t, days, 6)
	assert.Equal(t, calendar.NewDate(2025, time.March, 10), days[0])
}

func TestVisibleDays_Mes(t *testing.T) {
	// marzo 2025: 1ro es sábado (semana del lunes 24-feb), 31 es lunes
	days := calendar.VisibleDays(calendar.ViewMonth, calendar.NewDate(2025, time.March, 15))

	// 6 semanas de 6 días
	require.Len(t, days, 36)
	assert.Equal(t, calendar.NewDate(2025, time.February, 24), days[0])
	assert.Equal(t, calendar.NewDate(2025, time.April, 5), days[len(days)-1])

	seen := map[string]bool{}
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday(), "el tablero nunca muestra domingos")
		assert.False(t, seen[d.String()], "sin días repetidos")
		seen[d.String()] = true
	}

	// todos los días no-domingo del mes están presentes
	for d := calendar.NewDate(2025, time.March, 1); d.Before(calendar.NewDate(2025, time.April, 1)); d = d.AddDays(1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		assert.True(t, seen[d.String()], "falta el día %s", d)
	}
}

// Los días del mes van ordenados, semana a semana.
func TestVisibleDays_Mes_Ordenado(t *testing.T) {
	days := calendar.VisibleDays(calendar.ViewMonth, calendar.NewDate(2025, time.July, 1))
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Before(days[i]))
	}
}
