package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := token.Generate(testSecret, "session-123-abc", "compras-pro-test", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "session-123-abc", sessionID)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := token.Generate(testSecret, "session-123-abc", "compras-pro-test", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := token.Generate(testSecret, "session-123-abc", "compras-pro-test", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = token.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := token.Generate("", "session-123-abc", "compras-pro-test", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
