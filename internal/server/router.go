package server

import (
	"net/http"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/auth"
	authH "github.com/fekuna/estoque-api/internal/auth/handler"
	brandH "github.com/fekuna/estoque-api/internal/brand/handler"
	catH "github.com/fekuna/estoque-api/internal/category/handler"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	prodH "github.com/fekuna/estoque-api/internal/product/handler"
	"github.com/fekuna/estoque-api/internal/server/openapi"
	"github.com/gorilla/mux"
)

const statusCheckBody = "Aplicação funcionando!"

type Handlers struct {
	Auth     *authH.AuthHandler
	Category *catH.CategoryHandler
	Brand    *brandH.BrandHandler
	Product  *prodH.ProductHandler
}

// NewRouter registers every route. Entity routes sit behind the token
// middleware; /statuscheck, /auth and the API docs are public.
func NewRouter(h *Handlers, tokens *auth.TokenManager, rs *httpapi.Responder, log logger.ZapLogger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = rs.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperror.NotFound("Rota não encontrada")
	})
	r.MethodNotAllowedHandler = rs.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperror.InvalidInput("Método não permitido").WithStatus(http.StatusMethodNotAllowed)
	})

	// Registered first so a method mismatch on a public route is not
	// masked by the subrouter's not-found result.
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware(tokens, rs))

	api.Handle("/produtos", rs.Handle(h.Product.ListProducts)).Methods(http.MethodGet)
	api.Handle("/produtos", rs.Handle(h.Product.CreateProduct)).Methods(http.MethodPost)
	api.Handle("/produtos/{id}", rs.Handle(h.Product.GetProduct)).Methods(http.MethodGet)
	api.Handle("/produtos/{id}", rs.Handle(h.Product.UpdateProduct)).Methods(http.MethodPut)
	api.Handle("/produtos/{id}", rs.Handle(h.Product.DeleteProduct)).Methods(http.MethodDelete)

	api.Handle("/categorias", rs.Handle(h.Category.ListCategories)).Methods(http.MethodGet)
	api.Handle("/categorias", rs.Handle(h.Category.CreateCategory)).Methods(http.MethodPost)
	api.Handle("/categorias/{id}", rs.Handle(h.Category.GetCategory)).Methods(http.MethodGet)
	api.Handle("/categorias/{id}", rs.Handle(h.Category.UpdateCategory)).Methods(http.MethodPut)
	api.Handle("/categorias/{id}", rs.Handle(h.Category.DeleteCategory)).Methods(http.MethodDelete)

	api.Handle("/marcas", rs.Handle(h.Brand.ListBrands)).Methods(http.MethodGet)
	api.Handle("/marcas", rs.Handle(h.Brand.CreateBrand)).Methods(http.MethodPost)
	api.Handle("/marcas/{id}", rs.Handle(h.Brand.GetBrand)).Methods(http.MethodGet)
	api.Handle("/marcas/{id}", rs.Handle(h.Brand.UpdateBrand)).Methods(http.MethodPut)
	api.Handle("/marcas/{id}", rs.Handle(h.Brand.DeleteBrand)).Methods(http.MethodDelete)

	r.HandleFunc("/statuscheck", statusCheck).Methods(http.MethodGet)
	r.Handle("/auth/login", rs.Handle(h.Auth.Login)).Methods(http.MethodPost)
	r.Handle("/auth/registrar", rs.Handle(h.Auth.Register)).Methods(http.MethodPost)
	r.HandleFunc("/openapi.yaml", openapiHandler).Methods(http.MethodGet)
	r.HandleFunc("/docs", docsHandler).Methods(http.MethodGet)

	return httpapi.WithRequestID(httpapi.WithLogging(log)(rs.WithRecover(r)))
}

func statusCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(statusCheckBody))
}

func openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.YAML)
}

func docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

const docsPage = `<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="utf-8" />
    <title>Estoque API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
