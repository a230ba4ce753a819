package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favoritos/internal/models/db_models"
	"favoritos/internal/models/response_models"
	"favoritos/pkg/utils"
)

type fakeFavoritoRepo struct {
	total      int64
	ids        []string
	insertErr  error
	deleteErr  error
	inserted   []*db_models.Favorito
	lastPagina int
	lastTam    int
}

func (f *fakeFavoritoRepo) Insert(ctx context.Context, favorito *db_models.Favorito) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, favorito)
	return nil
}

func (f *fakeFavoritoRepo) Delete(ctx context.Context, clienteID uuid.UUID, produtoID string) error {
	return f.deleteErr
}

func (f *fakeFavoritoRepo) CountByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	return f.total, nil
}

func (f *fakeFavoritoRepo) ListProdutoIDs(ctx context.Context, clienteID uuid.UUID, pagina int, tamanho int) ([]string, error) {
	f.lastPagina = pagina
	f.lastTam = tamanho
	return f.ids, nil
}

type fakeProdutoAPI struct {
	produtos map[string]*response_models.ProdutoResponse
	err      error
	calls    atomic.Int64
}

func (f *fakeProdutoAPI) ObterProduto(ctx context.Context, produtoID string) (*response_models.ProdutoResponse, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.produtos[produtoID], nil
}

func (f *fakeProdutoAPI) VerificarExistencia(ctx context.Context, produtoID string) (bool, error) {
	produto, err := f.ObterProduto(ctx, produtoID)
	if err != nil {
		return false, err
	}
	return produto != nil, nil
}

func produtoFixture(id string) *response_models.ProdutoResponse {
	return &response_models.ProdutoResponse{ID: id, Title: "Produto " + id, Brand: "marca", Image: "http://example.com/" + id, Price: 10}
}

func clienteFixture() *db_models.Cliente {
	return &db_models.Cliente{BaseModel: db_models.BaseModel{ID: uuid.New()}, Nome: "Cliente", Email: "c@exemplo.com"}
}

func TestFavoritoList_SemFavoritos(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{}
	service := NewFavoritoService(&fakeFavoritoRepo{total: 0}, api)

	produtos, total, err := service.List(context.Background(), clienteFixture(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, produtos)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), api.calls.Load(), "catalog must not be called for an empty list")
}

func TestFavoritoList_MantemOrdemDaPagina(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{produtos: map[string]*response_models.ProdutoResponse{
		"p1": produtoFixture("p1"),
		"p2": produtoFixture("p2"),
		"p3": produtoFixture("p3"),
	}}
	repo := &fakeFavoritoRepo{total: 3, ids: []string{"p1", "p2", "p3"}}
	service := NewFavoritoService(repo, api)

	produtos, total, err := service.List(context.Background(), clienteFixture(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, produtos, 3)
	assert.Equal(t, "p1", produtos[0].ID)
	assert.Equal(t, "p2", produtos[1].ID)
	assert.Equal(t, "p3", produtos[2].ID)
}

func TestFavoritoList_DescartaProdutosSumidos(t *testing.T) {
	t.Parallel()

	// p2 disappeared from the catalog: the page shrinks, the total does not
	api := &fakeProdutoAPI{produtos: map[string]*response_models.ProdutoResponse{
		"p1": produtoFixture("p1"),
		"p3": produtoFixture("p3"),
	}}
	repo := &fakeFavoritoRepo{total: 3, ids: []string{"p1", "p2", "p3"}}
	service := NewFavoritoService(repo, api)

	produtos, total, err := service.List(context.Background(), clienteFixture(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, produtos, 2)
	assert.Equal(t, "p1", produtos[0].ID)
	assert.Equal(t, "p3", produtos[1].ID)
}

func TestFavoritoList_AbortaComCatalogoIndisponivel(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{err: utils.ErrProdutoUnavailable}
	repo := &fakeFavoritoRepo{total: 2, ids: []string{"p1", "p2"}}
	service := NewFavoritoService(repo, api)

	_, _, err := service.List(context.Background(), clienteFixture(), 1, 10)
	assert.True(t, errors.Is(err, utils.ErrProdutoUnavailable))
}

func TestFavoritoList_RepassaPaginacao(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{produtos: map[string]*response_models.ProdutoResponse{"p9": produtoFixture("p9")}}
	repo := &fakeFavoritoRepo{total: 25, ids: []string{"p9"}}
	service := NewFavoritoService(repo, api)

	_, total, err := service.List(context.Background(), clienteFixture(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, 3, repo.lastPagina)
	assert.Equal(t, 10, repo.lastTam)
}

func TestFavoritoAdd_ProdutoInexistente(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{}
	repo := &fakeFavoritoRepo{}
	service := NewFavoritoService(repo, api)

	err := service.Add(context.Background(), clienteFixture(), "fantasma")
	assert.True(t, errors.Is(err, utils.ErrProdutoNotFound))
	assert.Empty(t, repo.inserted, "no row may be persisted for an absent product")
}

func TestFavoritoAdd_Duplicado(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{produtos: map[string]*response_models.ProdutoResponse{"p1": produtoFixture("p1")}}
	service := NewFavoritoService(&fakeFavoritoRepo{insertErr: utils.ErrFavoritoExists}, api)

	err := service.Add(context.Background(), clienteFixture(), "p1")
	assert.True(t, errors.Is(err, utils.ErrFavoritoExists))
}

func TestFavoritoAdd_Sucesso(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{produtos: map[string]*response_models.ProdutoResponse{"p1": produtoFixture("p1")}}
	repo := &fakeFavoritoRepo{}
	service := NewFavoritoService(repo, api)

	cliente := clienteFixture()
	require.NoError(t, service.Add(context.Background(), cliente, "p1"))
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, cliente.ID, repo.inserted[0].ClienteID)
	assert.Equal(t, "p1", repo.inserted[0].ProdutoID)
}

func TestFavoritoAdd_CatalogoIndisponivel(t *testing.T) {
	t.Parallel()

	api := &fakeProdutoAPI{err: utils.ErrProdutoUnavailable}
	repo := &fakeFavoritoRepo{}
	service := NewFavoritoService(repo, api)

	err := service.Add(context.Background(), clienteFixture(), "p1")
	assert.True(t, errors.Is(err, utils.ErrProdutoUnavailable))
	assert.Empty(t, repo.inserted)
}

func TestFavoritoRemove(t *testing.T) {
	t.Parallel()

	service := NewFavoritoService(&fakeFavoritoRepo{}, &fakeProdutoAPI{})
	assert.NoError(t, service.Remove(context.Background(), clienteFixture(), "p1"))

	service = NewFavoritoService(&fakeFavoritoRepo{deleteErr: utils.ErrFavoritoNotFound}, &fakeProdutoAPI{})
	err := service.Remove(context.Background(), clienteFixture(), "p1")
	assert.True(t, errors.Is(err, utils.ErrFavoritoNotFound))
}
