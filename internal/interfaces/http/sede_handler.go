package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

// SedeHandler maneja las peticiones HTTP para Sede (protegido).
type SedeHandler struct {
	uc *usecase.SedeUseCase
}

// NewSedeHandler construye el handler.
func NewSedeHandler(uc *usecase.SedeUseCase) *SedeHandler {
	return &SedeHandler{uc: uc}
}

// List godoc
// @Summary      Listar sedes
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        activa  query  bool  false  "Filtrar por activa"
// @Success      200  {array}  dto.SedeResponse
// @Router       /api/sedes [get]
func (h *SedeHandler) List(c *fiber.Ctx) error {
	var activa *bool
	if v := c.Query("activa"); v != "" {
		b := v == "true"
		activa = &b
	}
	out, err := h.uc.List(activa)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sede por ID
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.SedeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [get]
func (h *SedeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Sede no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSedeRequest  true  "Datos de la sede"
// @Success      201   {object}  dto.SedeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sedes [post]
func (h *SedeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Nombre y código son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "El código de la sede ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sede"
// @Param        body  body  dto.UpdateSedeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SedeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [put]
func (h *SedeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "El código de la sede ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Sede no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sede
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [delete]
func (h *SedeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Sede no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Sede eliminada correctamente"})
}
