package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los casos de uso nunca mutan estado parcial
// antes de fallar.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado o bloqueado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("autenticación requerida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrIllegalTransition  = errors.New("transición de estado no permitida")
	ErrInvalidInput       = errors.New("entrada inválida")
)
