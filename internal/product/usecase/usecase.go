package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/cache"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/fekuna/estoque-api/internal/product"
	"github.com/fekuna/estoque-api/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo       product.Repository
	categories product.CategoryFinder
	brands     product.BrandFinder
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     logger.ZapLogger
}

func NewProductUseCase(
	repo product.Repository,
	categories product.CategoryFinder,
	brands product.BrandFinder,
	c cache.Cache,
	cacheTTL time.Duration,
	log logger.ZapLogger,
) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		brands:     brands,
		cache:      c,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

type cachedList struct {
	Products []model.Product
	Count    int
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, int, error) {
	// The generation is read before the store so a write that lands while
	// the list is being built moves readers to a fresh key.
	gen, err := uc.cache.Generation(ctx, cache.ProductListGeneration)
	cacheable := err == nil
	if err != nil {
		uc.logger.Warn("product list cache generation read failed", zap.Error(err))
	}

	if cacheable {
		var cached cachedList
		hit, err := uc.cache.Get(ctx, cache.ProductListKey(gen), &cached)
		if err != nil {
			uc.logger.Warn("product list cache read failed", zap.Error(err))
		}
		if hit {
			return cached.Products, cached.Count, nil
		}
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar produtos", err)
	}
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar produtos", err)
	}

	if cacheable {
		if err := uc.cache.Set(ctx, cache.ProductListKey(gen), cachedList{Products: products, Count: total}, uc.cacheTTL); err != nil {
			uc.logger.Warn("product list cache write failed", zap.Error(err))
		}
	}
	return products, total, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.find(ctx, id, "Erro ao buscar produto")
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	cat, brand, err := uc.resolveReferences(ctx, *input.CategoriaID, *input.MarcaID, "Erro ao criar produto")
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Nome:        input.Nome,
		Descricao:   input.Descricao,
		Preco:       *input.Preco,
		CategoriaID: *input.CategoriaID,
		MarcaID:     *input.MarcaID,
	}
	if input.QuantidadeEmEstoque != nil {
		p.QuantidadeEmEstoque = *input.QuantidadeEmEstoque
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperror.Internal("Erro ao criar produto", err)
	}
	p.Categoria, p.Marca = cat, brand

	uc.invalidateList(ctx)
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.find(ctx, input.ID, "Erro ao atualizar produto")
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		p.Nome = *input.Nome
	}
	if input.Descricao != nil {
		p.Descricao = *input.Descricao
	}
	if input.Preco != nil {
		p.Preco = *input.Preco
	}
	if input.QuantidadeEmEstoque != nil {
		p.QuantidadeEmEstoque = *input.QuantidadeEmEstoque
	}
	if input.CategoriaID != nil {
		p.CategoriaID = *input.CategoriaID
	}
	if input.MarcaID != nil {
		p.MarcaID = *input.MarcaID
	}

	cat, brand, err := uc.resolveReferences(ctx, p.CategoriaID, p.MarcaID, "Erro ao atualizar produto")
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperror.Internal("Erro ao atualizar produto", err)
	}
	p.Categoria, p.Marca = cat, brand

	uc.invalidateList(ctx)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id, "Erro ao deletar produto"); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Internal("Erro ao deletar produto", err)
	}
	uc.invalidateList(ctx)
	return nil
}

func (uc *productUseCase) find(ctx context.Context, id int64, failMsg string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(failMsg, err)
	}
	if p == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Produto com Id %d não encontrado", id))
	}
	return p, nil
}

// resolveReferences loads the category and brand a product points at and
// reports every missing one as invalid input.
func (uc *productUseCase) resolveReferences(ctx context.Context, categoryID, brandID int64, failMsg string) (*model.Category, *model.Brand, error) {
	cat, err := uc.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, nil, apperror.Internal(failMsg, err)
	}
	brand, err := uc.brands.FindByID(ctx, brandID)
	if err != nil {
		return nil, nil, apperror.Internal(failMsg, err)
	}

	catMsg := fmt.Sprintf("Categoria com Id %d não existe", categoryID)
	brandMsg := fmt.Sprintf("Marca com Id %d não existe", brandID)

	switch {
	case cat == nil && brand == nil:
		return nil, nil, apperror.InvalidInput("Categoria e marca informadas não existem",
			apperror.FieldError{Field: "categoriaId", Message: catMsg},
			apperror.FieldError{Field: "marcaId", Message: brandMsg},
		)
	case cat == nil:
		return nil, nil, apperror.InvalidInput(catMsg, apperror.FieldError{Field: "categoriaId", Message: catMsg})
	case brand == nil:
		return nil, nil, apperror.InvalidInput(brandMsg, apperror.FieldError{Field: "marcaId", Message: brandMsg})
	}
	return cat, brand, nil
}

func (uc *productUseCase) invalidateList(ctx context.Context) {
	if err := uc.cache.Bump(ctx, cache.ProductListGeneration); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
