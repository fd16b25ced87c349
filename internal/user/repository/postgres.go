package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/estoque-api/internal/database"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/fekuna/estoque-api/internal/user"
	"github.com/jmoiron/sqlx"
)

const emailConstraint = "usuarios_email_key"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, nome, email, senha_hash, created_at, updated_at FROM usuarios WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usuario by email: %w", err)
	}
	return &u, nil
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO usuarios (nome, email, senha_hash)
        VALUES (:nome, :email, :senha_hash)
        RETURNING id, nome, email, senha_hash, created_at, updated_at`
	bound, args, err := r.DB.BindNamed(query, u)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	if err := r.DB.QueryRowxContext(ctx, bound, args...).StructScan(u); err != nil {
		if database.IsUniqueViolation(err, emailConstraint) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}
