package model

type User struct {
	BaseModel
	Nome      string `db:"nome" json:"nome"`
	Email     string `db:"email" json:"email"`
	SenhaHash string `db:"senha_hash" json:"-"`
}
