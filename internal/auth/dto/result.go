package dto

import "github.com/fekuna/estoque-api/internal/model"

// PublicUser is the user representation returned to clients.
type PublicUser struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type AuthResult struct {
	Token   string     `json:"token"`
	Usuario PublicUser `json:"usuario"`
}

func NewAuthResult(token string, u *model.User) *AuthResult {
	return &AuthResult{
		Token:   token,
		Usuario: PublicUser{ID: u.ID, Nome: u.Nome, Email: u.Email},
	}
}
