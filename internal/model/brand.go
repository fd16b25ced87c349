package model

type Brand struct {
	BaseModel
	Descricao string `db:"descricao" json:"descricao"`
}
