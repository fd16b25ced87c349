package brand

import (
	"context"

	"github.com/fekuna/estoque-api/internal/brand/dto"
	"github.com/fekuna/estoque-api/internal/model"
)

type UseCase interface {
	ListBrands(ctx context.Context) ([]model.Brand, int, error)
	GetBrand(ctx context.Context, id int64) (*model.Brand, error)
	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}
