package category

import (
	"context"

	"github.com/fekuna/estoque-api/internal/category/dto"
	"github.com/fekuna/estoque-api/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, int, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
