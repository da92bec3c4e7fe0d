package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
)

// CalendarHandler sirve los tableros de calendario (protegido).
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// ServiceBoard godoc
// @Summary      Tablero de servicios
// @Description  Entradas abiertas con sus asignaciones agrupadas por día visible.
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        view     query  string  false  "day, week o month"  default(week)
// @Param        date     query  string  false  "Fecha ancla yyyy-MM-dd (default hoy)"
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Success      200  {object}  dto.ServiceBoardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calendar/services [get]
func (h *CalendarHandler) ServiceBoard(c *fiber.Ctx) error {
	mode, anchor, err := boardParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ServiceBoard(mode, anchor, queryPtr(c, "sede_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// QuoteBoard godoc
// @Summary      Tablero de cotizaciones
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        view     query  string  false  "day, week o month"  default(week)
// @Param        date     query  string  false  "Fecha ancla yyyy-MM-dd (default hoy)"
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Success      200  {object}  dto.QuoteBoardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/calendar/quotes [get]
func (h *CalendarHandler) QuoteBoard(c *fiber.Ctx) error {
	mode, anchor, err := boardParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.QuoteBoard(mode, anchor, queryPtr(c, "sede_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// boardParams extrae view (default week) y fecha ancla (default hoy).
func boardParams(c *fiber.Ctx) (calendar.ViewMode, calendar.Date, error) {
	mode := calendar.ViewWeek
	if v := c.Query("view"); v != "" {
		var err error
		if mode, err = calendar.ParseViewMode(v); err != nil {
			return "", calendar.Date{}, err
		}
	}
	anchor := calendar.FromTime(time.Now())
	if v := c.Query("date"); v != "" {
		var err error
		if anchor, err = calendar.Parse(v); err != nil {
			return "", calendar.Date{}, err
		}
	}
	return mode, anchor, nil
}
