package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
)

// MaterialHandler maneja el catálogo de materiales. Las lecturas son
// públicas; las mutaciones y el pedido directo van detrás del middleware.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler del catálogo.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List lista o busca materiales. Query: q (texto libre), category.
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"), c.Query("category"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un material.
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Create da de alta un material.
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita un material.
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un material.
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Order godoc
// @Summary      Pedir un material del catálogo
// @Description  Genera una solicitud draft con monto = precio unitario × cantidad.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "id del material"
// @Param        body  body  dto.OrderMaterialRequest true  "cantidad"
// @Success      201   {object}  dto.RequestResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/order [post]
func (h *MaterialHandler) Order(c *fiber.Ctx) error {
	var in dto.OrderMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.MaterialID = c.Params("id")
	out, err := h.uc.Order(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
