package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/brand/dto"
	"github.com/fekuna/estoque-api/internal/httpapi"
	"github.com/fekuna/estoque-api/internal/logger"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	calls   int
	created *dto.CreateBrandInput
	updated *dto.UpdateBrandInput
	err     error
}

func (s *stubUseCase) ListBrands(ctx context.Context) ([]model.Brand, int, error) {
	s.calls++
	return []model.Brand{{BaseModel: model.BaseModel{ID: 1}, Descricao: "Logitech"}}, 1, s.err
}

func (s *stubUseCase) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.Brand{BaseModel: model.BaseModel{ID: id}, Descricao: "Logitech"}, nil
}

func (s *stubUseCase) CreateBrand(ctx context.Context, in *dto.CreateBrandInput) (*model.Brand, error) {
	s.calls++
	s.created = in
	return &model.Brand{BaseModel: model.BaseModel{ID: 10}, Descricao: in.Descricao}, nil
}

func (s *stubUseCase) UpdateBrand(ctx context.Context, in *dto.UpdateBrandInput) (*model.Brand, error) {
	s.calls++
	s.updated = in
	return &model.Brand{BaseModel: model.BaseModel{ID: in.ID}, Descricao: in.Descricao}, nil
}

func (s *stubUseCase) DeleteBrand(ctx context.Context, id int64) error {
	s.calls++
	return s.err
}

func newRouter(uc *stubUseCase) *mux.Router {
	h := NewBrandHandler(uc, logger.NewNop())
	rs := httpapi.NewResponder(false, logger.NewNop())
	r := mux.NewRouter()
	r.Handle("/marcas", rs.Handle(h.ListBrands)).Methods(http.MethodGet)
	r.Handle("/marcas", rs.Handle(h.CreateBrand)).Methods(http.MethodPost)
	r.Handle("/marcas/{id}", rs.Handle(h.GetBrand)).Methods(http.MethodGet)
	r.Handle("/marcas/{id}", rs.Handle(h.UpdateBrand)).Methods(http.MethodPut)
	r.Handle("/marcas/{id}", rs.Handle(h.DeleteBrand)).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListBrandsEnvelope(t *testing.T) {
	rec := do(newRouter(&stubUseCase{}), http.MethodGet, "/marcas", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page httpapi.Page[model.Brand]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "Logitech", page.Data[0].Descricao)
}

func TestInvalidPathIDNeverReachesUseCase(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		uc := &stubUseCase{}
		rec := do(newRouter(uc), method, "/marcas/abc", `{"descricao":"Dell"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Contains(t, rec.Body.String(), "ID deve ser um número inteiro maior que 0")
		assert.Zero(t, uc.calls, method)
	}
}

func TestCreateBrand(t *testing.T) {
	t.Run("Success trims input", func(t *testing.T) {
		uc := &stubUseCase{}
		rec := do(newRouter(uc), http.MethodPost, "/marcas", `{"descricao":"  Dell  "}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.created)
		assert.Equal(t, "Dell", uc.created.Descricao)
	})

	t.Run("Missing descricao", func(t *testing.T) {
		uc := &stubUseCase{}
		rec := do(newRouter(uc), http.MethodPost, "/marcas", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Descrição é obrigatória")
		assert.Zero(t, uc.calls)
	})

	t.Run("Too short after trim", func(t *testing.T) {
		uc := &stubUseCase{}
		rec := do(newRouter(uc), http.MethodPost, "/marcas", `{"descricao":" a "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Descrição deve ter entre 2 e 100 caracteres")
		assert.Zero(t, uc.calls)
	})
}

func TestUpdateBrandCarriesPathID(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(newRouter(uc), http.MethodPut, "/marcas/4", `{"descricao":"Sony"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.updated)
	assert.Equal(t, int64(4), uc.updated.ID)
}

func TestDeleteBrand(t *testing.T) {
	rec := do(newRouter(&stubUseCase{}), http.MethodDelete, "/marcas/4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	uc := &stubUseCase{err: apperror.Conflict("Não é possível deletar a marca, existem produtos vinculados")}
	rec = do(newRouter(uc), http.MethodDelete, "/marcas/4", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "existem produtos vinculados")
}

func TestGetBrandNotFound(t *testing.T) {
	uc := &stubUseCase{err: apperror.NotFound("Marca com Id 7 não encontrada")}
	rec := do(newRouter(uc), http.MethodGet, "/marcas/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marca com Id 7 não encontrada")
}
