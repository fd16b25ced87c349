package category

import (
	"context"

	"github.com/fekuna/estoque-api/internal/model"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error
}

// ProductCounter reports how many products reference a category.
type ProductCounter interface {
	CountByCategoryID(ctx context.Context, categoryID int64) (int, error)
}
