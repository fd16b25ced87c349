package dto

import "strings"

type CreateProductInput struct {
	Nome                string   `json:"nome" validate:"required,min=2,max=100" msg:"required=Nome é obrigatório;*=Nome deve ter entre 2 e 100 caracteres"`
	Descricao           string   `json:"descricao" validate:"required,min=5,max=500" msg:"required=Descrição é obrigatória;*=Descrição deve ter entre 5 e 500 caracteres"`
	Preco               *float64 `json:"preco" validate:"required,gte=0.01" msg:"required=Preço é obrigatório;*=Preço deve ser um número maior que 0"`
	QuantidadeEmEstoque *int     `json:"quantidadeEmEstoque" validate:"omitempty,gte=0" msg:"*=Quantidade em estoque deve ser um número inteiro maior ou igual a 0"`
	CategoriaID         *int64   `json:"categoriaId" validate:"required,gte=1" msg:"required=ID da categoria é obrigatório;*=ID da categoria deve ser um número inteiro maior que 0"`
	MarcaID             *int64   `json:"marcaId" validate:"required,gte=1" msg:"required=ID da marca é obrigatório;*=ID da marca deve ser um número inteiro maior que 0"`
}

func (in *CreateProductInput) Normalize() {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Descricao = strings.TrimSpace(in.Descricao)
}

// UpdateProductInput is a partial update: nil fields keep the stored value.
type UpdateProductInput struct {
	ID                  int64    `json:"-"`
	Nome                *string  `json:"nome" validate:"omitempty,min=2,max=100" msg:"*=Nome deve ter entre 2 e 100 caracteres"`
	Descricao           *string  `json:"descricao" validate:"omitempty,min=5,max=500" msg:"*=Descrição deve ter entre 5 e 500 caracteres"`
	Preco               *float64 `json:"preco" validate:"omitempty,gte=0.01" msg:"*=Preço deve ser um número maior que 0"`
	QuantidadeEmEstoque *int     `json:"quantidadeEmEstoque" validate:"omitempty,gte=0" msg:"*=Quantidade em estoque deve ser um número inteiro maior ou igual a 0"`
	CategoriaID         *int64   `json:"categoriaId" validate:"omitempty,gte=1" msg:"*=ID da categoria deve ser um número inteiro maior que 0"`
	MarcaID             *int64   `json:"marcaId" validate:"omitempty,gte=1" msg:"*=ID da marca deve ser um número inteiro maior que 0"`
}

func (in *UpdateProductInput) Normalize() {
	if in.Nome != nil {
		s := strings.TrimSpace(*in.Nome)
		in.Nome = &s
	}
	if in.Descricao != nil {
		s := strings.TrimSpace(*in.Descricao)
		in.Descricao = &s
	}
}
