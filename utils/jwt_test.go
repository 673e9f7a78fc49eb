package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateToken("admin", "admin")
	require.NoError(t, err)

	sub, role, err := issuer.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
	assert.Equal(t, "admin", role)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	a, err := NewTokenIssuer("secret-a", time.Hour)
	require.NoError(t, err)
	b, err := NewTokenIssuer("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := a.GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, _, err = b.ExtractClaims(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", -time.Minute)
	require.NoError(t, err)

	token, err := issuer.GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, _, err = issuer.ExtractClaims(token)
	assert.Error(t, err)
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}
