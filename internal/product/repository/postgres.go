package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/estoque-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const productColumns = "id, nome, descricao, preco, quantidade_em_estoque, categoria_id, marca_id, created_at, updated_at"

// selectJoined loads products with their category and brand. The quoted
// aliases map onto the nested Categoria and Marca structs.
const selectJoined = `
        SELECT p.id, p.nome, p.descricao, p.preco, p.quantidade_em_estoque,
               p.categoria_id, p.marca_id, p.created_at, p.updated_at,
               c.id AS "categoria.id", c.descricao AS "categoria.descricao",
               c.created_at AS "categoria.created_at", c.updated_at AS "categoria.updated_at",
               m.id AS "marca.id", m.descricao AS "marca.descricao",
               m.created_at AS "marca.created_at", m.updated_at AS "marca.updated_at"
        FROM produtos p
        JOIN categorias c ON c.id = p.categoria_id
        JOIN marcas m ON m.id = p.marca_id`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM produtos"); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return count, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, selectJoined+" ORDER BY p.id ASC"); err != nil {
		return nil, fmt.Errorf("select produtos: %w", err)
	}
	return products, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product, selectJoined+" WHERE p.id = $1 LIMIT 1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find produto %d: %w", id, err)
	}
	return &product, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO produtos (nome, descricao, preco, quantidade_em_estoque, categoria_id, marca_id)
        VALUES (:nome, :descricao, :preco, :quantidade_em_estoque, :categoria_id, :marca_id)
        RETURNING ` + productColumns
	return r.namedReturning(ctx, query, p, "insert produto")
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE produtos
        SET nome = :nome,
            descricao = :descricao,
            preco = :preco,
            quantidade_em_estoque = :quantidade_em_estoque,
            categoria_id = :categoria_id,
            marca_id = :marca_id,
            updated_at = NOW()
        WHERE id = :id
        RETURNING ` + productColumns
	return r.namedReturning(ctx, query, p, fmt.Sprintf("update produto %d", p.ID))
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM produtos WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete produto %d: %w", id, err)
	}
	return nil
}

func (r *PGRepository) CountByCategoryID(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM produtos WHERE categoria_id = $1", categoryID)
	if err != nil {
		return 0, fmt.Errorf("count produtos by categoria %d: %w", categoryID, err)
	}
	return count, nil
}

func (r *PGRepository) CountByBrandID(ctx context.Context, brandID int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM produtos WHERE marca_id = $1", brandID)
	if err != nil {
		return 0, fmt.Errorf("count produtos by marca %d: %w", brandID, err)
	}
	return count, nil
}

// namedReturning binds p's fields into a named query and scans the
// RETURNING row back into p.
func (r *PGRepository) namedReturning(ctx context.Context, query string, p *model.Product, op string) error {
	bound, args, err := r.DB.BindNamed(query, p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.DB.QueryRowxContext(ctx, bound, args...).StructScan(p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
