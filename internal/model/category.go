package model

type Category struct {
	BaseModel
	Descricao string `db:"descricao" json:"descricao"`
}
