package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/estoque-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const columns = "id, descricao, created_at, updated_at"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM categorias"); err != nil {
		return 0, fmt.Errorf("count categorias: %w", err)
	}
	return count, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := "SELECT " + columns + " FROM categorias ORDER BY id ASC"
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("select categorias: %w", err)
	}
	return categories, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	query := "SELECT " + columns + " FROM categorias WHERE id = $1 LIMIT 1"
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find categoria %d: %w", id, err)
	}
	return &category, nil
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categorias (descricao)
        VALUES ($1)
        RETURNING ` + columns
	if err := r.DB.QueryRowxContext(ctx, query, c.Descricao).StructScan(c); err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categorias
        SET descricao = $1,
            updated_at = NOW()
        WHERE id = $2
        RETURNING ` + columns
	if err := r.DB.QueryRowxContext(ctx, query, c.Descricao, c.ID).StructScan(c); err != nil {
		return fmt.Errorf("update categoria %d: %w", c.ID, err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM categorias WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete categoria %d: %w", id, err)
	}
	return nil
}
