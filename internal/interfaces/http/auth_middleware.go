package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
)

// LocalSessionID key del id de sesión en c.Locals.
const LocalSessionID = "session_id"

// AuthMiddleware valida el Bearer token y fija el id de su sesión en el
// contexto de la petición. La identidad queda aislada por petición: dos
// peticiones concurrentes con tokens distintos resuelven cada una su propio
// usuario. El token solo transporta el id: si la sesión ya no existe en el
// snapshot (logout, expiración), la petición es 401 aunque la firma sea
// válida.
func AuthMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, err := authUC.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if _, err := authUC.ResolveSession(sessionID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión inexistente o vencida"})
		}
		c.Locals(LocalSessionID, sessionID)
		c.SetUserContext(auth.WithSessionID(c.UserContext(), sessionID))
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
