package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/domain"
)

// QuoteEntryHandler maneja las peticiones HTTP para QuoteEntry (protegido).
type QuoteEntryHandler struct {
	uc *usecase.QuoteEntryUseCase
}

// NewQuoteEntryHandler construye el handler.
func NewQuoteEntryHandler(uc *usecase.QuoteEntryUseCase) *QuoteEntryHandler {
	return &QuoteEntryHandler{uc: uc}
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quote-entries
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Param        estado   query  string  false  "abierto o cerrado"
// @Success      200  {array}  dto.QuoteEntryResponse
// @Router       /api/quote-entries [get]
func (h *QuoteEntryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryPtr(c, "sede_id"), queryPtr(c, "estado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización por ID
// @Tags         quote-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote-entries/{id} [get]
func (h *QuoteEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cotización no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cotización
// @Tags         quote-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteEntryRequest  true  "Datos de la cotización"
// @Success      201   {object}  dto.QuoteEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quote-entries [post]
func (h *QuoteEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Zone == "" || in.Equipment == "" || in.Client == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Zone, equipment y client son requeridos"})
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
// @Summary      Actualizar cotización
// @Tags         quote-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuoteEntryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.QuoteEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quote-entries/{id} [put]
func (h *QuoteEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteEntryRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cotización no encontrada"})
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar cotización
// @Tags         quote-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quote-entries/{id}/close [post]
func (h *QuoteEntryHandler) Close(c *fiber.Ctx) error {
	return h.respondTransition(c, h.uc.Close, "La cotización ya está cerrada")
}

// Reopen godoc
// @Summary      Reabrir cotización
// @Tags         quote-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quote-entries/{id}/reopen [post]
func (h *QuoteEntryHandler) Reopen(c *fiber.Ctx) error {
	return h.respondTransition(c, h.uc.Reopen, "La cotización ya está abierta")
}

func (h *QuoteEntryHandler) respondTransition(c *fiber.Ctx, op func(string) (*dto.QuoteEntryResponse, error), conflictMsg string) error {
	out, err := op(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: conflictMsg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cotización no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización
// @Tags         quote-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote-entries/{id} [delete]
func (h *QuoteEntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Cotización eliminada correctamente"})
}
