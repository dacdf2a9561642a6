package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Expedientes-api/internal/application/dto"
	"github.com/jhoicas/Expedientes-api/internal/domain"
	pkgjwt "github.com/jhoicas/Expedientes-api/pkg/jwt"
)

func ejecutar(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// licencia
// ──────────────────────────────────────────────────────────────────────────────

func TestLicencia_Semaforo(t *testing.T) {
	t.Setenv("OC_ZONA_HORARIA", "UTC")

	out, err := ejecutar(t, "licencia", "2026-04-20", "--hoy", "2026-03-14")
	require.NoError(t, err)

	var r dto.SemaforoResponse
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)
	assert.Equal(t, "naranja", r.Estado)
	assert.Equal(t, 37, r.Dias)
	assert.False(t, r.Vencida)
}

func TestLicencia_FechaInvalida(t *testing.T) {
	_, err := ejecutar(t, "licencia", "20/04/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// token
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_EmiteJWTValido(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("JWT_ISSUER", "occtl-test")

	out, err := ejecutar(t, "token", "--user", "42", "--role", "compras", "--exp", "5")
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse("secreto-de-prueba", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
	assert.Equal(t, "compras", role)
}

func TestToken_SinUsuario(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	_, err := ejecutar(t, "token", "--role", "admin")
	assert.Error(t, err, "--user es obligatorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// validaciones previas a conectar con la base
// ──────────────────────────────────────────────────────────────────────────────

func TestPreparar_IDInvalido(t *testing.T) {
	_, err := ejecutar(t, "preparar", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTopesSet_MontoInvalido(t *testing.T) {
	_, err := ejecutar(t, "topes", "set", "Contratación directa", "mucho")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
