package brand

import (
	"context"

	"github.com/fekuna/estoque-api/internal/model"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id int64) (*model.Brand, error)
	Create(ctx context.Context, brand *model.Brand) error
	Update(ctx context.Context, brand *model.Brand) error
	Delete(ctx context.Context, id int64) error
}

// ProductCounter reports how many products reference a brand.
type ProductCounter interface {
	CountByBrandID(ctx context.Context, brandID int64) (int, error)
}
