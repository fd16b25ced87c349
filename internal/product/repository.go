package product

import (
	"context"

	"github.com/fekuna/estoque-api/internal/model"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Referential integrity checks for category and brand deletes.
	CountByCategoryID(ctx context.Context, categoryID int64) (int, error)
	CountByBrandID(ctx context.Context, brandID int64) (int, error)
}

// CategoryFinder and BrandFinder resolve the references a product points at.
// Both return nil, nil when the row does not exist.
type CategoryFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Category, error)
}

type BrandFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Brand, error)
}
