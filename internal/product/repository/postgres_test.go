package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/estoque-api/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinedColumns = []string{
	"id", "nome", "descricao", "preco", "quantidade_em_estoque", "categoria_id", "marca_id", "created_at", "updated_at",
	"categoria.id", "categoria.descricao", "categoria.created_at", "categoria.updated_at",
	"marca.id", "marca.descricao", "marca.created_at", "marca.updated_at",
}

var productColumnList = []string{
	"id", "nome", "descricao", "preco", "quantidade_em_estoque", "categoria_id", "marca_id", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestFindAllScansJoinedReferences(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(`FROM produtos p\s+JOIN categorias c ON c.id = p.categoria_id\s+JOIN marcas m ON m.id = p.marca_id ORDER BY p.id ASC`).
		WillReturnRows(sqlmock.NewRows(joinedColumns).
			AddRow(1, "Mouse", "Mouse óptico", 129.9, 3, 2, 5, now, now, 2, "Periféricos", now, now, 5, "Logitech", now, now))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Mouse", p.Nome)
	assert.Equal(t, 129.9, p.Preco)
	assert.Equal(t, 3, p.QuantidadeEmEstoque)
	require.NotNil(t, p.Categoria)
	require.NotNil(t, p.Marca)
	assert.Equal(t, int64(2), p.Categoria.ID)
	assert.Equal(t, "Periféricos", p.Categoria.Descricao)
	assert.Equal(t, "Logitech", p.Marca.Descricao)
}

func TestFindByIDAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(joinedColumns))

	p, err := repo.FindByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreateBindsNamedFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO produtos`).
		WithArgs("Mouse", "Mouse óptico", 129.9, int64(0), int64(2), int64(5)).
		WillReturnRows(sqlmock.NewRows(productColumnList).
			AddRow(11, "Mouse", "Mouse óptico", 129.9, 0, 2, 5, now, now))

	p := &model.Product{Nome: "Mouse", Descricao: "Mouse óptico", Preco: 129.9, CategoriaID: 2, MarcaID: 5}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(11), p.ID)
	assert.True(t, now.Equal(p.CreatedAt))
}

func TestUpdateSurfacesForeignKeyFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`UPDATE produtos`).
		WithArgs("Mouse", "Mouse óptico", 99.0, int64(1), int64(2), int64(5), int64(11)).
		WillReturnError(errors.New("violates foreign key constraint"))

	p := &model.Product{BaseModel: model.BaseModel{ID: 11}, Nome: "Mouse", Descricao: "Mouse óptico", Preco: 99, QuantidadeEmEstoque: 1, CategoriaID: 2, MarcaID: 5}
	err := repo.Update(context.Background(), p)
	assert.ErrorContains(t, err, "update produto 11")
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`DELETE FROM produtos WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 11))
}

func TestCountByReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM produtos WHERE categoria_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM produtos WHERE marca_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.CountByCategoryID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.CountByBrandID(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM produtos$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
