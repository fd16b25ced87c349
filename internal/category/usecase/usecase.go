package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/cache"
	"github.com/fekuna/estoque-api/internal/category"
	"github.com/fekuna/estoque-api/internal/category/dto"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo     category.Repository
	products category.ProductCounter
	cache    cache.Cache
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, products category.ProductCounter, c cache.Cache, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		products: products,
		cache:    c,
		logger:   log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, int, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar categorias", err)
	}
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar categorias", err)
	}
	return categories, total, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return uc.find(ctx, id, "Erro ao buscar categoria")
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	cat := &model.Category{Descricao: input.Descricao}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, apperror.Internal("Erro ao criar categoria", err)
	}
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.find(ctx, input.ID, "Erro ao atualizar categoria")
	if err != nil {
		return nil, err
	}

	cat.Descricao = input.Descricao
	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, apperror.Internal("Erro ao atualizar categoria", err)
	}

	// Product listings embed the category.
	uc.invalidateProducts(ctx)
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id, "Erro ao deletar categoria"); err != nil {
		return err
	}

	linked, err := uc.products.CountByCategoryID(ctx, id)
	if err != nil {
		return apperror.Internal("Erro ao deletar categoria", err)
	}
	if linked > 0 {
		return apperror.Conflict("Não é possível deletar a categoria, existem produtos vinculados")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Internal("Erro ao deletar categoria", err)
	}
	uc.invalidateProducts(ctx)
	return nil
}

func (uc *categoryUseCase) find(ctx context.Context, id int64, failMsg string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(failMsg, err)
	}
	if cat == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Categoria com Id %d não encontrada", id))
	}
	return cat, nil
}

func (uc *categoryUseCase) invalidateProducts(ctx context.Context) {
	if err := uc.cache.Bump(ctx, cache.ProductListGeneration); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
