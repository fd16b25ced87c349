package dto

import "strings"

type CreateBrandInput struct {
	Descricao string `json:"descricao" validate:"required,min=2,max=100" msg:"required=Descrição é obrigatória;*=Descrição deve ter entre 2 e 100 caracteres"`
}

func (in *CreateBrandInput) Normalize() {
	in.Descricao = strings.TrimSpace(in.Descricao)
}

type UpdateBrandInput struct {
	ID        int64  `json:"-"`
	Descricao string `json:"descricao" validate:"required,min=2,max=100" msg:"required=Descrição é obrigatória;*=Descrição deve ter entre 2 e 100 caracteres"`
}

func (in *UpdateBrandInput) Normalize() {
	in.Descricao = strings.TrimSpace(in.Descricao)
}
