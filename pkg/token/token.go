// Package token firma y valida el sobre de transporte del id de sesión.
//
// El token NO es la sesión: la colección de sesiones del snapshot sigue
// siendo la autoridad. Un token con firma válida cuyo id de sesión ya no
// existe (logout, expiración perezosa) no autentica a nadie. La firma solo
// protege la integridad del id en tránsito.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el id de sesión.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}

// Generate genera un token firmado HS256 que transporta el id de sesión.
// La expiración del token coincide con la de la sesión.
func Generate(secret, sessionID, issuer string, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el id de sesión que transporta.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.SessionID, nil
}
