package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

// ServiceEntryHandler maneja las peticiones HTTP para ServiceEntry (protegido).
type ServiceEntryHandler struct {
	uc *usecase.ServiceEntryUseCase
}

// NewServiceEntryHandler construye el handler.
func NewServiceEntryHandler(uc *usecase.ServiceEntryUseCase) *ServiceEntryHandler {
	return &ServiceEntryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas de servicio
// @Tags         service-entries
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Param        estado   query  string  false  "abierto o cerrado"
// @Success      200  {array}  dto.ServiceEntryResponse
// @Router       /api/service-entries [get]
func (h *ServiceEntryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryPtr(c, "sede_id"), queryPtr(c, "estado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de servicio por ID
// @Tags         service-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.ServiceEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-entries/{id} [get]
func (h *ServiceEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Entrada no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear entrada de servicio
// @Tags         service-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceEntryRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.ServiceEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/service-entries [post]
func (h *ServiceEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Site == "" || in.Zone == "" || in.OTT == "" || in.Client == "" ||
		in.Advisor == "" || in.Type == "" || in.EquipmentState == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Site, zone, ott, client, advisor, type y equipment_state son requeridos"})
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
// @Summary      Actualizar entrada de servicio
// @Tags         service-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateServiceEntryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ServiceEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-entries/{id} [put]
func (h *ServiceEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceEntryRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Entrada no encontrada"})
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar entrada de servicio
// @Tags         service-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.ServiceEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-entries/{id}/close [post]
func (h *ServiceEntryHandler) Close(c *fiber.Ctx) error {
	return h.respondTransition(c, h.uc.Close, "La entrada ya está cerrada")
}

// Reopen godoc
// @Summary      Reabrir entrada de servicio
// @Tags         service-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.ServiceEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-entries/{id}/reopen [post]
func (h *ServiceEntryHandler) Reopen(c *fiber.Ctx) error {
	return h.respondTransition(c, h.uc.Reopen, "La entrada ya está abierta")
}

func (h *ServiceEntryHandler) respondTransition(c *fiber.Ctx, op func(string) (*dto.ServiceEntryResponse, error), conflictMsg string) error {
	out, err := op(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: conflictMsg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Entrada no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de servicio
// @Tags         service-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-entries/{id} [delete]
func (h *ServiceEntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Entrada no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Entrada eliminada correctamente"})
}
