package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/auth/dto"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/fekuna/estoque-api/internal/user"
	"github.com/fekuna/estoque-api/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginRequiredMessage    = "Email e senha são obrigatórios"
	invalidCredentials      = "Credenciais inválidas"
	loginFailedMessage      = "Ocorreu um erro ao autenticar. Tente novamente mais tarde."
	registerRequiredMessage = "Nome, email e senha são obrigatórios"
	emailTakenMessage       = "Email já utilizado"
	registerFailedMessage   = "Erro ao cadastrar usuário"
)

type authUseCase struct {
	users  user.Repository
	tokens *auth.TokenManager
	cost   int
	logger logger.ZapLogger

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthUseCase(users user.Repository, tokens *auth.TokenManager, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		logger: log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	if details := validation.Struct(input); len(details) > 0 {
		return nil, apperror.InvalidInput(loginRequiredMessage, details...)
	}

	u, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(loginFailedMessage, err)
	}
	if u == nil {
		// Keep the unknown-email path as slow as a wrong password.
		_ = bcrypt.CompareHashAndPassword(uc.dummy(), []byte(input.Senha))
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(input.Senha)); err != nil {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, apperror.Internal(loginFailedMessage, err)
	}
	return dto.NewAuthResult(token, u), nil
}

func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error) {
	details := validation.Struct(input)
	if input.Nome == "" || input.Email == "" || input.Senha == "" {
		return nil, apperror.InvalidInput(registerRequiredMessage, details...)
	}
	if len(details) > 0 {
		// only senha carries rules beyond required
		return nil, apperror.InvalidInput(details[0].Message, details...)
	}

	existing, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(registerFailedMessage, err)
	}
	if existing != nil {
		return nil, emailTaken()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), uc.cost)
	if err != nil {
		return nil, apperror.Internal(registerFailedMessage, err)
	}

	u := &model.User{Nome: input.Nome, Email: input.Email, SenhaHash: string(hash)}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, emailTaken()
		}
		return nil, apperror.Internal(registerFailedMessage, err)
	}
	uc.logger.Info("user registered", zap.Int64("id", u.ID))

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, apperror.Internal(registerFailedMessage, err)
	}
	return dto.NewAuthResult(token, u), nil
}

func emailTaken() error {
	return apperror.Conflict(emailTakenMessage).WithStatus(http.StatusUnauthorized)
}

func (uc *authUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), uc.cost)
	})
	return uc.dummyHash
}
