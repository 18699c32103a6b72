package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Veterinaria-api/internal/application/dto"
	"github.com/jhoicas/Veterinaria-api/internal/domain"
	"github.com/jhoicas/Veterinaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Veterinaria-api/pkg/jwt"
)

var testJWT = JWTConfig{Secret: "secreto", ExpMinutes: 30, Issuer: "veterinaria-api"}

func newAuth(t *testing.T) *AuthUseCase {
	t.Helper()
	uc := NewAuthUseCase(memory.NewStore().Users(), testJWT)
	created, err := uc.EnsureAdmin(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.True(t, created)
	return uc
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc := newAuth(t)

	created, err := uc.EnsureAdmin(context.Background(), "admin", "otra")
	require.NoError(t, err)
	assert.False(t, created, "el segundo llamado no crea nada")
}

func TestLogin_OK(t *testing.T) {
	uc := newAuth(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Role)
	assert.Equal(t, 1800, out.ExpiresIn)

	claims, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
