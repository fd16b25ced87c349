package handler

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/brand"
	"github.com/fekuna/estoque-api/internal/brand/dto"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	"go.uber.org/zap"
)

type BrandHandler struct {
	uc     brand.UseCase
	logger logger.ZapLogger
}

func NewBrandHandler(uc brand.UseCase, log logger.ZapLogger) *BrandHandler {
	return &BrandHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) error {
	brands, total, err := h.uc.ListBrands(r.Context())
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, httpapi.NewPage(brands, total))
	return nil
}

func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	b, err := h.uc.GetBrand(r.Context(), id)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, b)
	return nil
}

func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateBrandInput
	if err := httpapi.Bind(r, &input); err != nil {
		return err
	}

	b, err := h.uc.CreateBrand(r.Context(), &input)
	if err != nil {
		return err
	}
	h.logger.Info("brand created", zap.Int64("id", b.ID), auth.UserField(r.Context()))
	httpapi.WriteJSON(w, http.StatusCreated, b)
	return nil
}

func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateBrandInput
	id, err := httpapi.BindWithID(r, &input)
	if err != nil {
		return err
	}
	input.ID = id

	b, err := h.uc.UpdateBrand(r.Context(), &input)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, b)
	return nil
}

func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteBrand(r.Context(), id); err != nil {
		return err
	}
	h.logger.Info("brand deleted", zap.Int64("id", id), auth.UserField(r.Context()))
	w.WriteHeader(http.StatusNoContent)
	return nil
}
