package product

import (
	"context"

	"github.com/fekuna/estoque-api/internal/model"
	"github.com/fekuna/estoque-api/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context) ([]model.Product, int, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
