package dto

import "strings"

type CreateCategoryInput struct {
	Descricao string `json:"descricao" validate:"required,min=2,max=100" msg:"required=Descrição é obrigatória;*=Descrição deve ter entre 2 e 100 caracteres"`
}

func (in *CreateCategoryInput) Normalize() {
	in.Descricao = strings.TrimSpace(in.Descricao)
}

type UpdateCategoryInput struct {
	ID        int64  `json:"-"`
	Descricao string `json:"descricao" validate:"required,min=2,max=100" msg:"required=Descrição é obrigatória;*=Descrição deve ter entre 2 e 100 caracteres"`
}

func (in *UpdateCategoryInput) Normalize() {
	in.Descricao = strings.TrimSpace(in.Descricao)
}
