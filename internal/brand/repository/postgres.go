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
	if err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM marcas"); err != nil {
		return 0, fmt.Errorf("count marcas: %w", err)
	}
	return count, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Brand, error) {
	brands := []model.Brand{}
	query := "SELECT " + columns + " FROM marcas ORDER BY id ASC"
	if err := r.DB.SelectContext(ctx, &brands, query); err != nil {
		return nil, fmt.Errorf("select marcas: %w", err)
	}
	return brands, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Brand, error) {
	var brand model.Brand
	query := "SELECT " + columns + " FROM marcas WHERE id = $1 LIMIT 1"
	err := r.DB.GetContext(ctx, &brand, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find marca %d: %w", id, err)
	}
	return &brand, nil
}

func (r *PGRepository) Create(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO marcas (descricao)
        VALUES ($1)
        RETURNING ` + columns
	if err := r.DB.QueryRowxContext(ctx, query, b.Descricao).StructScan(b); err != nil {
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE marcas
        SET descricao = $1,
            updated_at = NOW()
        WHERE id = $2
        RETURNING ` + columns
	if err := r.DB.QueryRowxContext(ctx, query, b.Descricao, b.ID).StructScan(b); err != nil {
		return fmt.Errorf("update marca %d: %w", b.ID, err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM marcas WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete marca %d: %w", id, err)
	}
	return nil
}
