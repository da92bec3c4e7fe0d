package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

func TestParse_FormatoFecha(t *testing.T) {
	d, err := calendar.Parse("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, calendar.NewDate(2025, time.March, 10), d)
	assert.Equal(t, "2025-03-10", d.String())
}

// Clientes que mandan timestamps completos: la parte horaria se descarta.
func TestParse_TimestampRFC3339_DescartaHora(t *testing.T) {
	d, err := calendar.Parse("2025-03-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, calendar.NewDate(2025, time.March, 10), d)
}

func TestParse_FechaInvalida(t *testing.T) {
	_, err := calendar.Parse("10/03/2025")
	assert.Error(t, err)

	_, err = calendar.Parse("")
	assert.Error(t, err)
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, calendar.Date{}.IsZero())
	assert.False(t, calendar.NewDate(2025, time.January, 1).IsZero())
}

func TestDate_AddDays_CruzaMes(t *testing.T) {
	d := calendar.NewDate(2025, time.January, 30)
	assert.Equal(t, calendar.NewDate(2025, time.February, 1), d.AddDays(2))
	assert.Equal(t, calendar.NewDate(2025, time.January, 28), d.AddDays(-2))
}

func TestDate_Before(t *testing.T) {
	a := calendar.NewDate(2025, time.March, 10)
	b := calendar.NewDate(2025, time.March, 11)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

// Dos timestamps distintos del mismo día deben reducirse al mismo valor.
func TestFromTime_IgnoraHoraYZona(t *testing.T) {
	madrugada := time.Date(2025, time.March, 10, 0, 30, 0, 0, time.UTC)
	noche := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, calendar.FromTime(madrugada), calendar.FromTime(noche))
}

func TestDate_JSON(t *testing.T) {
	d := calendar.NewDate(2025, time.December, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(data))

	var back calendar.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-31"`), &back))
	assert.Equal(t, d, back)

	// timestamp completo también se acepta en el unmarshal
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-31T08:00:00Z"`), &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"31-12-2025"`), &back))
}
