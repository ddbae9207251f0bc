package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// RequestHandler maneja el ciclo de vida de las solicitudes de compra.
type RequestHandler struct {
	uc *usecase.RequestUseCase
}

// NewRequestHandler construye el handler de solicitudes.
func NewRequestHandler(uc *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud (estado draft)
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequestRequest  true  "datos de la solicitud"
// @Success      201   {object}  dto.RequestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista solicitudes según la visión del usuario. Filtros por query:
// status, bucketType, from, to (fechas YYYY-MM-DD).
func (h *RequestHandler) List(c *fiber.Ctx) error {
	filter, err := parseRequestFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de fechas inválido, formato YYYY-MM-DD"})
	}
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una solicitud visible para el usuario.
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update edita una solicitud propia en draft.
func (h *RequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Transicionar el estado de una solicitud
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id de la solicitud"
// @Param        body  body  dto.UpdateStatusRequest true  "estado destino"
// @Success      200   {object}  dto.RequestResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/status [put]
func (h *RequestHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStatus(c.UserContext(), c.Params("id"), entity.RequestStatus(in.Status))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una solicitud.
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseRequestFilter(c *fiber.Ctx) (repository.RequestFilter, error) {
	filter := repository.RequestFilter{
		Status:     entity.RequestStatus(c.Query("status")),
		BucketType: c.Query("bucketType"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, err
		}
		// Inclusivo hasta el final del día.
		filter.DateTo = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}
