package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// AssignmentHandler maneja las peticiones HTTP para Assignment (protegido).
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        service_entry_id  query  string  false  "Filtrar por entrada"
// @Param        resource_id       query  string  false  "Filtrar por recurso"
// @Param        date              query  string  false  "Fecha exacta yyyy-MM-dd"
// @Param        from              query  string  false  "Desde yyyy-MM-dd (inclusivo)"
// @Param        to                query  string  false  "Hasta yyyy-MM-dd (inclusivo)"
// @Success      200  {array}  dto.AssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	f := repository.AssignmentFilter{
		ServiceEntryID: queryPtr(c, "service_entry_id"),
		ResourceID:     queryPtr(c, "resource_id"),
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

// Create godoc
// @Summary      Crear asignación
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "entrada, recurso y fecha"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ServiceEntryID == "" || in.ResourceID == "" || in.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Service_entry_id, resource_id y date son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "El recurso ya está asignado a esa entrada en esa fecha"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar asignación
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Asignación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Asignación eliminada correctamente"})
}

// queryDate parsea un query param de fecha, nil si viene vacío.
func queryDate(c *fiber.Ctx, key string) (*calendar.Date, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	d, err := calendar.Parse(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
