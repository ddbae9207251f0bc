package entity

import (
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

// Session prueba efímera de autenticación, residente en el snapshot. Se crea
// en el login y se destruye en el logout o perezosamente al detectar la
// expiración durante la resolución de identidad.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"` // denormalizado para diagnóstico
	Role      rbac.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"` // CreatedAt + TTL
}

// Expired reporta si la sesión ya venció en el instante dado.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
