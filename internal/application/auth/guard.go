package auth

import (
	"context"

	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

// Guard chequeos de autorización sobre la identidad del contexto. Cada chequeo
// vuelve a resolver la identidad: un logout o una expiración entre dos
// llamadas se detecta siempre, y dos peticiones concurrentes nunca se ven la
// identidad la una a la otra.
type Guard struct {
	auth *UseCase
}

// NewGuard construye el guard sobre el caso de uso de autenticación.
func NewGuard(auth *UseCase) *Guard {
	return &Guard{auth: auth}
}

// CurrentUser devuelve el usuario autenticado del contexto o
// ErrUnauthenticated.
func (g *Guard) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := g.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Can reporta si la identidad del contexto tiene la capacidad. Sin identidad,
// o ante cualquier fallo de resolución, deniega.
func (g *Guard) Can(ctx context.Context, cap rbac.Capability) bool {
	user, err := g.auth.Current(ctx)
	if err != nil || user == nil {
		return false
	}
	return rbac.PermissionsFor(user.Role).Has(cap)
}

// Require exige la capacidad y devuelve al usuario que la posee.
// ErrUnauthenticated sin identidad, ErrForbidden sin la capacidad.
func (g *Guard) Require(ctx context.Context, cap rbac.Capability) (*entity.User, error) {
	user, err := g.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !rbac.PermissionsFor(user.Role).Has(cap) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// IsOwner reporta si el usuario creó la solicitud.
func IsOwner(user *entity.User, req *entity.Request) bool {
	return user != nil && req != nil && req.CreatedBy == user.ID
}
