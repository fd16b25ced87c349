package auth

import (
	"context"

	"github.com/fekuna/estoque-api/internal/auth/dto"
)

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error)
	Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error)
}
