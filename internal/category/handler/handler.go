package handler

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/category"
	"github.com/fekuna/estoque-api/internal/category/dto"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	cats, total, err := h.uc.ListCategories(r.Context())
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, httpapi.NewPage(cats, total))
	return nil
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	cat, err := h.uc.GetCategory(r.Context(), id)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, cat)
	return nil
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateCategoryInput
	if err := httpapi.Bind(r, &input); err != nil {
		return err
	}

	cat, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		return err
	}
	h.logger.Info("category created", zap.Int64("id", cat.ID), auth.UserField(r.Context()))
	httpapi.WriteJSON(w, http.StatusCreated, cat)
	return nil
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateCategoryInput
	id, err := httpapi.BindWithID(r, &input)
	if err != nil {
		return err
	}
	input.ID = id

	cat, err := h.uc.UpdateCategory(r.Context(), &input)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, cat)
	return nil
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCategory(r.Context(), id); err != nil {
		return err
	}
	h.logger.Info("category deleted", zap.Int64("id", id), auth.UserField(r.Context()))
	w.WriteHeader(http.StatusNoContent)
	return nil
}
