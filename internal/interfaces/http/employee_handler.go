package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
)

// EmployeeHandler maneja fichas de empleados y el reseteo de passwords.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List lista o busca fichas. Query: q (texto libre).
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una ficha.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Create alta manual de ficha.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita una ficha.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una ficha; la cuenta vinculada queda sin ficha.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword godoc
// @Summary      Resetear la password de la cuenta vinculada a una ficha
// @Description  Devuelve la credencial temporal en texto plano una sola vez.
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "id de la ficha"
// @Success      200  {object}  dto.ResetPasswordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/reset-password [post]
func (h *EmployeeHandler) ResetPassword(c *fiber.Ctx) error {
	out, err := h.uc.ResetPassword(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
