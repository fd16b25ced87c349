package handler

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/auth"
	"github.com/fekuna/estoque-api/internal/auth/dto"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var input dto.LoginInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		return err
	}
	result, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusOK, result)
	return nil
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var input dto.RegisterInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		return err
	}
	result, err := h.uc.Register(r.Context(), &input)
	if err != nil {
		return err
	}
	httpapi.WriteJSON(w, http.StatusCreated, result)
	return nil
}
