package auth

import (
	"net/http"
	"strings"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/httpapi"
)

const accessDeniedMessage = "Acesso negado. Token inválido ou ausente."

// Middleware rejects requests without a valid "Authorization: Bearer" token
// and puts the verified claims on the request context.
func Middleware(tm *TokenManager, rs *httpapi.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				rs.WriteError(w, r, apperror.Unauthorized(accessDeniedMessage))
				return
			}
			claims, err := tm.Verify(raw)
			if err != nil {
				appErr := apperror.Unauthorized(accessDeniedMessage)
				appErr.Err = err
				rs.WriteError(w, r, appErr)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
