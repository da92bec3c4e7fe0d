package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

// ResourceHandler maneja las peticiones HTTP para Resource (protegido).
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
}

// NewResourceHandler construye el handler.
func NewResourceHandler(uc *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// List godoc
// @Summary      Listar recursos
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede (las fases siempre se incluyen)"
// @Param        type     query  string  false  "Filtrar por tipo"
// @Success      200  {array}  dto.ResourceResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryPtr(c, "sede_id"), queryPtr(c, "type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recurso"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Recurso no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recurso
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Datos del recurso"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Name y type son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar recurso
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del recurso"
// @Param        body  body  dto.UpdateResourceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Recurso no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recurso
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recurso"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Recurso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Recurso eliminado correctamente"})
}

// queryPtr devuelve el query param como puntero, nil si viene vacío.
func queryPtr(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
