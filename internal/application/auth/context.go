package auth

import "context"

type sessionIDKey struct{}

// WithSessionID devuelve un contexto que transporta el id de sesión de la
// petición. El middleware HTTP lo fija tras validar el token; a partir de ahí
// la identidad se resuelve por contexto, nunca por estado compartido entre
// peticiones.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext devuelve el id de sesión del contexto, o "" si no hay.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return v
	}
	return ""
}
