package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

// PendingItemHandler maneja las peticiones HTTP para PendingItem (protegido).
type PendingItemHandler struct {
	uc *usecase.PendingItemUseCase
}

// NewPendingItemHandler construye el handler.
func NewPendingItemHandler(uc *usecase.PendingItemUseCase) *PendingItemHandler {
	return &PendingItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar pendientes (abiertos primero)
// @Tags         pending-items
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Param        estado   query  string  false  "abierto o cerrado"
// @Success      200  {array}  dto.PendingItemResponse
// @Router       /api/pending-items [get]
func (h *PendingItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryPtr(c, "sede_id"), queryPtr(c, "estado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pendiente por ID
// @Tags         pending-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pendiente"
// @Success      200  {object}  dto.PendingItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pending-items/{id} [get]
func (h *PendingItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pendiente no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pendiente
// @Tags         pending-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePendingItemRequest  true  "Datos del pendiente"
// @Success      201   {object}  dto.PendingItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pending-items [post]
func (h *PendingItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePendingItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Item == "" || in.Date.IsZero() || in.AssignedTo == "" || in.DueDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Item, date, assigned_to y due_date son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pendiente
// @Tags         pending-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pendiente"
// @Param        body  body  dto.UpdatePendingItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PendingItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pending-items/{id} [put]
func (h *PendingItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePendingItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pendiente no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pendiente
// @Tags         pending-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pendiente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pending-items/{id} [delete]
func (h *PendingItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pendiente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Pendiente eliminado correctamente"})
}
