package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/auth/dto"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/fekuna/estoque-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) (*authUseCase, *mockUserRepository, *auth.TokenManager) {
	t.Helper()
	repo := &mockUserRepository{store: map[string]*model.User{}}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	uc := NewAuthUseCase(repo, tokens, logger.NewNop()).(*authUseCase)
	uc.cost = bcrypt.MinCost
	return uc, repo, tokens
}

func TestRegister(t *testing.T) {
	uc, repo, tokens := setup(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res, err := uc.Register(ctx, &dto.RegisterInput{Nome: " Ana ", Email: " Ana@Example.com ", Senha: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", res.Usuario.Nome)
		assert.Equal(t, "ana@example.com", res.Usuario.Email)

		saved := repo.store["ana@example.com"]
		require.NotNil(t, saved)
		assert.NotEqual(t, "password123", saved.SenhaHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.SenhaHash), []byte("password123")))

		claims, err := tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, claims.ID)
	})

	t.Run("Fail on email taken", func(t *testing.T) {
		_, err := uc.Register(ctx, &dto.RegisterInput{Nome: "Outra", Email: "ana@example.com", Senha: "password123"})
		appErr := apperror.From(err)
		assert.Equal(t, apperror.KindConflict, appErr.Kind)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status())
		assert.Equal(t, "Email já utilizado", appErr.Message)
		assert.Len(t, repo.store, 1)
	})

	t.Run("Fail on short password", func(t *testing.T) {
		_, err := uc.Register(ctx, &dto.RegisterInput{Nome: "Joao", Email: "joao@example.com", Senha: "1234567"})
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status())
		assert.Equal(t, "A senha deve conter 8 ou mais caracteres", appErr.Message)
		assert.Nil(t, repo.store["joao@example.com"])
	})

	t.Run("Fail on password over 72 bytes", func(t *testing.T) {
		_, err := uc.Register(ctx, &dto.RegisterInput{Nome: "Joao", Email: "joao@example.com", Senha: strings.Repeat("a", 80)})
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status())
		assert.Equal(t, "A senha deve conter no máximo 72 bytes", appErr.Message)
		require.Len(t, appErr.Details, 1)
		assert.Equal(t, "senha", appErr.Details[0].Field)
		assert.Nil(t, repo.store["joao@example.com"])
	})

	t.Run("Accepts a 72 byte password", func(t *testing.T) {
		// 36 two-byte runes
		res, err := uc.Register(ctx, &dto.RegisterInput{Nome: "Bia", Email: "bia@example.com", Senha: strings.Repeat("ç", 36)})
		require.NoError(t, err)
		assert.Equal(t, "bia@example.com", res.Usuario.Email)
	})

	t.Run("Fail on missing fields", func(t *testing.T) {
		_, err := uc.Register(ctx, &dto.RegisterInput{Email: "x@example.com"})
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status())
		assert.Equal(t, "Nome, email e senha são obrigatórios", appErr.Message)
		assert.Len(t, repo.store, 2)
	})
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	uc, repo, _ := setup(t)
	repo.createErr = user.ErrEmailTaken

	_, err := uc.Register(context.Background(), &dto.RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "password123"})
	appErr := apperror.From(err)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status())
	assert.Equal(t, "Email já utilizado", appErr.Message)
}

func TestRegisterStoreFailure(t *testing.T) {
	uc, repo, _ := setup(t)
	repo.createErr = errors.New("disk full")

	_, err := uc.Register(context.Background(), &dto.RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "password123"})
	appErr := apperror.From(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status())
	assert.Equal(t, "Erro ao cadastrar usuário", appErr.Message)
}

func TestLogin(t *testing.T) {
	uc, _, tokens := setup(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "password123"})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		res, err := uc.Login(ctx, &dto.LoginInput{Email: "ANA@example.com", Senha: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", res.Usuario.Nome)
		_, err = tokens.Verify(res.Token)
		assert.NoError(t, err)
	})

	t.Run("Wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPass := uc.Login(ctx, &dto.LoginInput{Email: "ana@example.com", Senha: "wrong-password"})
		_, unknown := uc.Login(ctx, &dto.LoginInput{Email: "ghost@example.com", Senha: "password123"})

		a, b := apperror.From(wrongPass), apperror.From(unknown)
		assert.Equal(t, http.StatusUnauthorized, a.Status())
		assert.Equal(t, "Credenciais inválidas", a.Message)
		assert.Equal(t, a.Status(), b.Status())
		assert.Equal(t, a.Message, b.Message)
	})

	t.Run("Missing fields", func(t *testing.T) {
		_, err := uc.Login(ctx, &dto.LoginInput{Email: "ana@example.com"})
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status())
		assert.Equal(t, "Email e senha são obrigatórios", appErr.Message)
	})
}

type mockUserRepository struct {
	store     map[string]*model.User
	nextID    int64
	createErr error
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := m.store[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.store[u.Email] = &cp
	return nil
}
