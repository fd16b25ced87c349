package handler

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/product"
	"github.com/fekuna/estoque-api/internal/product/dto"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, total, err := h.uc.ListProducts(r.Context())
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, httpapi.NewPage(products, total))
	return nil
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateProductInput
	if err := httpapi.Bind(r, &input); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		return err
	}
	h.logger.Info("product created", zap.Int64("id", p.ID), auth.UserField(r.Context()))
	httpapi.WriteJSON(w, http.StatusCreated, p)
	return nil
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateProductInput
	id, err := httpapi.BindWithID(r, &input)
	if err != nil {
		return err
	}
	input.ID = id

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := httpapi.PathID(r)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		return err
	}
	h.logger.Info("product deleted", zap.Int64("id", id), auth.UserField(r.Context()))
	w.WriteHeader(http.StatusNoContent)
	return nil
}
