package model

type Product struct {
	BaseModel
	Nome                string    `db:"nome" json:"nome"`
	Descricao           string    `db:"descricao" json:"descricao"`
	Preco               float64   `db:"preco" json:"preco"`
	QuantidadeEmEstoque int       `db:"quantidade_em_estoque" json:"quantidadeEmEstoque"`
	CategoriaID         int64     `db:"categoria_id" json:"categoriaId"`
	MarcaID             int64     `db:"marca_id" json:"marcaId"`
	Categoria           *Category `db:"categoria" json:"categoria,omitempty"` // Joined data
	Marca               *Brand    `db:"marca" json:"marca,omitempty"`         // Joined data
}
