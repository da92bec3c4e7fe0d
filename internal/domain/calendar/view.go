package calendar

import (
	"fmt"
	"time"
)

// ViewMode modo de vista del tablero.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ParseViewMode valida el modo de vista recibido por query string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("vista inválida %q: se espera day, week o month", s)
}

// startOfWeek devuelve el lunes de la semana de d.
func startOfWeek(d Date) Date {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // domingo
	}
	return d.AddDays(-offset)
}

// VisibleDays calcula el conjunto de días que el tablero muestra para un
// modo de vista y una fecha ancla. Los domingos nunca se muestran:
//
//	day   -> solo el ancla
//	week  -> lunes a sábado de la semana del ancla (6 días)
//	month -> todas las semanas lunes-a-sábado que tocan el mes del ancla
func VisibleDays(mode ViewMode, anchor Date) []Date {
	switch mode {
	case ViewDay:
		return []Date{anchor}
	case ViewWeek:
		return weekDays(anchor)
	case ViewMonth:
		return monthDays(anchor)
	}
	return nil
}

func weekDays(anchor Date) []Date {
	start := startOfWeek(anchor)
	days := make([]Date, 6)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

func monthDays(anchor Date) []Date {
	first := NewDate(anchor.Year, anchor.Month, 1)
	last := FromTime(first.Time().AddDate(0, 1, -1))

	var days []Date
	for d := startOfWeek(first); !last.Before(d); d = d.AddDays(7) {
		days = append(days, weekDays(d)...)
	}
	return days
}
