package dto

import "strings"

type LoginInput struct {
	Email string `json:"email" validate:"required" msg:"*=Email é obrigatório"`
	Senha string `json:"senha" validate:"required" msg:"*=Senha é obrigatória"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

type RegisterInput struct {
	Nome  string `json:"nome" validate:"required" msg:"*=Nome é obrigatório"`
	Email string `json:"email" validate:"required" msg:"*=Email é obrigatório"`
	Senha string `json:"senha" validate:"required,min=8,maxbytes=72" msg:"required=Senha é obrigatória;maxbytes=A senha deve conter no máximo 72 bytes;*=A senha deve conter 8 ou mais caracteres"`
}

func (in *RegisterInput) Normalize() {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}
