package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{InvalidInput("Dados inválidos"), http.StatusBadRequest},
		{Unauthorized("Credenciais inválidas"), http.StatusUnauthorized},
		{NotFound("Produto com Id 1 não encontrado"), http.StatusNotFound},
		{Conflict("existem produtos vinculados"), http.StatusBadRequest},
		{Internal("Erro ao listar marcas", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, c.err.Status(), c.err.Kind.String())
	}
}

func TestWithStatusOverridesKind(t *testing.T) {
	err := Conflict("Email já utilizado").WithStatus(http.StatusUnauthorized)

	assert.Equal(t, KindConflict, err.Kind)
	assert.Equal(t, http.StatusUnauthorized, err.Status())
}

func TestFromFindsWrappedError(t *testing.T) {
	inner := NotFound("Marca com Id 3 não encontrada")
	wrapped := fmt.Errorf("usecase: %w", inner)

	got := From(wrapped)

	require.Same(t, inner, got)
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindConflict))
}

func TestFromDefaultsToInternal(t *testing.T) {
	raw := errors.New("connection refused")

	got := From(raw)

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status())
	assert.Empty(t, got.Message)
	assert.ErrorIs(t, got, raw)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Erro ao criar marca: db down", Internal("Erro ao criar marca", errors.New("db down")).Error())
	assert.Equal(t, "Dados inválidos", InvalidInput("Dados inválidos").Error())
}
