// Package calendar contiene el modelo de fechas del tablero de agenda:
// un valor fecha-sin-hora y el cálculo de días visibles por modo de vista.
//
// Las asignaciones se comparan por valor Date, nunca por prefijos de
// string: cualquier timestamp se reduce a fecha en el borde de parseo.
package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout de serialización de fechas (yyyy-MM-dd).
const Layout = "2006-01-02"

// Date es una fecha de calendario sin hora ni zona horaria.
// El valor cero no es una fecha válida (IsZero lo reporta).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate construye una fecha.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime reduce un instante a su fecha, descartando hora y zona.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse acepta "yyyy-MM-dd" y, por tolerancia con clientes que envían
// timestamps completos, RFC3339; en ese caso la parte horaria se descarta.
func Parse(s string) (Date, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t), nil
	}
	return Date{}, fmt.Errorf("fecha inválida %q: se espera yyyy-MM-dd", s)
}

// IsZero reporta si la fecha es el valor cero.
func (d Date) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// Time devuelve la medianoche UTC de la fecha (para persistencia en columnas DATE).
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String devuelve la fecha en formato yyyy-MM-dd.
func (d Date) String() string { return d.Time().Format(Layout) }

// Weekday devuelve el día de la semana.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// AddDays devuelve la fecha desplazada n días.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reporta si d es anterior a other.
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }

// MarshalJSON serializa como "yyyy-MM-dd".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta lo mismo que Parse.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
