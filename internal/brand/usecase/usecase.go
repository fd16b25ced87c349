package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/cache"
	"github.com/fekuna/estoque-api/internal/brand"
	"github.com/fekuna/estoque-api/internal/brand/dto"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"go.uber.org/zap"
)

type brandUseCase struct {
	repo     brand.Repository
	products brand.ProductCounter
	cache    cache.Cache
	logger   logger.ZapLogger
}

func NewBrandUseCase(repo brand.Repository, products brand.ProductCounter, c cache.Cache, log logger.ZapLogger) brand.UseCase {
	return &brandUseCase{
		repo:     repo,
		products: products,
		cache:    c,
		logger:   log,
	}
}

func (uc *brandUseCase) ListBrands(ctx context.Context) ([]model.Brand, int, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar marcas", err)
	}
	brands, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, apperror.Internal("Erro ao listar marcas", err)
	}
	return brands, total, nil
}

func (uc *brandUseCase) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	return uc.find(ctx, id, "Erro ao buscar marca")
}

func (uc *brandUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	b := &model.Brand{Descricao: input.Descricao}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, apperror.Internal("Erro ao criar marca", err)
	}
	return b, nil
}

func (uc *brandUseCase) UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error) {
	b, err := uc.find(ctx, input.ID, "Erro ao atualizar marca")
	if err != nil {
		return nil, err
	}

	b.Descricao = input.Descricao
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, apperror.Internal("Erro ao atualizar marca", err)
	}

	// Product listings embed the brand.
	uc.invalidateProducts(ctx)
	return b, nil
}

func (uc *brandUseCase) DeleteBrand(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id, "Erro ao deletar marca"); err != nil {
		return err
	}

	linked, err := uc.products.CountByBrandID(ctx, id)
	if err != nil {
		return apperror.Internal("Erro ao deletar marca", err)
	}
	if linked > 0 {
		return apperror.Conflict("Não é possível deletar a marca, existem produtos vinculados")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Internal("Erro ao deletar marca", err)
	}
	uc.invalidateProducts(ctx)
	return nil
}

func (uc *brandUseCase) find(ctx context.Context, id int64, failMsg string) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(failMsg, err)
	}
	if b == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Marca com Id %d não encontrada", id))
	}
	return b, nil
}

func (uc *brandUseCase) invalidateProducts(ctx context.Context) {
	if err := uc.cache.Bump(ctx, cache.ProductListGeneration); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}
