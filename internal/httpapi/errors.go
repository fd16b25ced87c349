// Package httpapi holds the HTTP plumbing shared by every entity handler:
// the failure responder, JSON helpers and middleware.
package httpapi

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/logger"
	"go.uber.org/zap"
)

const defaultErrorMessage = "Erro interno do servidor"

type errorBody struct {
	Mensagem string                `json:"mensagem"`
	Erro     string                `json:"erro,omitempty"`
	Erros    []apperror.FieldError `json:"erros,omitempty"`
}

// HandlerFunc is an http.HandlerFunc that reports failure by return value.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Responder renders failures. It is the only place failure bodies are built.
type Responder struct {
	Production bool
	Logger     logger.ZapLogger
}

func NewResponder(production bool, log logger.ZapLogger) *Responder {
	return &Responder{Production: production, Logger: log}
}

// Handle adapts fn to http.Handler, sending any returned error to WriteError.
func (rs *Responder) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rs.WriteError(w, r, err)
		}
	})
}

func (rs *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	status := appErr.Status()

	body := errorBody{
		Mensagem: appErr.Message,
		Erros:    appErr.Details,
	}
	if body.Mensagem == "" {
		body.Mensagem = defaultErrorMessage
	}
	if !rs.Production && appErr.Err != nil {
		body.Erro = appErr.Err.Error()
	}

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("kind", appErr.Kind.String()),
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if status >= http.StatusInternalServerError {
		rs.Logger.Error(body.Mensagem, fields...)
	} else {
		rs.Logger.Debug(body.Mensagem, fields...)
	}

	WriteJSON(w, status, body)
}
