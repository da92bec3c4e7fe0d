package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// QuoteAssignmentHandler maneja las peticiones HTTP para QuoteAssignment (protegido).
type QuoteAssignmentHandler struct {
	uc *usecase.QuoteAssignmentUseCase
}

// NewQuoteAssignmentHandler construye el handler.
func NewQuoteAssignmentHandler(uc *usecase.QuoteAssignmentUseCase) *QuoteAssignmentHandler {
	return &QuoteAssignmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar asignaciones de cotización
// @Tags         quote-assignments
// @Security     Bearer
// @Produce      json
// @Param        quote_entry_id  query  string  false  "Filtrar por cotización"
// @Param        date            query  string  false  "Fecha exacta yyyy-MM-dd"
// @Param        status          query  string  false  "scheduled, pending o delivered"
// @Param        from            query  string  false  "Desde yyyy-MM-dd (inclusivo)"
// @Param        to              query  string  false  "Hasta yyyy-MM-dd (inclusivo)"
// @Success      200  {array}  dto.QuoteAssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quote-assignments [get]
func (h *QuoteAssignmentHandler) List(c *fiber.Ctx) error {
	f := repository.QuoteAssignmentFilter{
		QuoteEntryID: queryPtr(c, "quote_entry_id"),
		Status:       queryPtr(c, "status"),
	}
	var err error
	if f.Date, err = queryDate(c, "date"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if f.From, err = queryDate(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if f.To, err = queryDate(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Agendar cotización en una fecha
// @Description  Si la cotización ya estaba agendada ese día, sobreescribe el status.
// @Tags         quote-assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertQuoteAssignmentRequest  true  "cotización, fecha y status"
// @Success      201   {object}  dto.QuoteAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quote-assignments [post]
func (h *QuoteAssignmentHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertQuoteAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.QuoteEntryID == "" || in.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Quote_entry_id y date son requeridos"})
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar status de una asignación de cotización
// @Tags         quote-assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.UpdateQuoteAssignmentRequest  true  "nuevo status"
// @Success      200   {object}  dto.QuoteAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quote-assignments/{id} [put]
func (h *QuoteAssignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuoteAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser scheduled, pending o delivered"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Asignación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desagendar cotización
// @Tags         quote-assignments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote-assignments/{id} [delete]
func (h *QuoteAssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Asignación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Asignación eliminada correctamente"})
}
