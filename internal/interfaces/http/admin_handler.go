package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/usecase"
)

// AdminHandler administración de cuentas y estado del sistema.
type AdminHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers lista todas las cuentas.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser elimina una cuenta. La ficha de empleado vinculada sobrevive.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats contadores internos del sistema.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.SystemStats(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
