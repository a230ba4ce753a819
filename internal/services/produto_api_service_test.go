package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favoritos/pkg/utils"
)

func TestObterProduto_Encontrado(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/abc-123/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc-123","title":"Cafeteira","brand":"marca x","image":"http://example.com/img.jpg","price":129.9,"reviewScore":4.3}`))
	}))
	defer server.Close()

	client := NewProdutoAPIClient(server.URL)
	produto, err := client.ObterProduto(context.Background(), "abc-123")
	require.NoError(t, err)
	require.NotNil(t, produto)
	assert.Equal(t, "abc-123", produto.ID)
	assert.Equal(t, "Cafeteira", produto.Title)
	assert.Equal(t, 129.9, produto.Price)
	require.NotNil(t, produto.ReviewScore)
	assert.Equal(t, 4.3, *produto.ReviewScore)
}

func TestObterProduto_NaoEncontrado(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewProdutoAPIClient(server.URL)
	produto, err := client.ObterProduto(context.Background(), "sumiu")
	require.NoError(t, err)
	assert.Nil(t, produto)
}

func TestObterProduto_ErroDoServidor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewProdutoAPIClient(server.URL)
	_, err := client.ObterProduto(context.Background(), "abc-123")
	assert.True(t, errors.Is(err, utils.ErrProdutoUnavailable))
}

func TestObterProduto_FalhaDeTransporte(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewProdutoAPIClient(server.URL)
	_, err := client.ObterProduto(context.Background(), "abc-123")
	assert.True(t, errors.Is(err, utils.ErrProdutoUnavailable))
}

func TestObterProduto_CorpoInvalido(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("isto não é json"))
	}))
	defer server.Close()

	client := NewProdutoAPIClient(server.URL)
	_, err := client.ObterProduto(context.Background(), "abc-123")
	assert.True(t, errors.Is(err, utils.ErrProdutoUnavailable))
}

func TestVerificarExistencia(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/existe/" {
			w.Write([]byte(`{"id":"existe","title":"t","brand":"b","image":"i","price":1}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewProdutoAPIClient(server.URL)

	existe, err := client.VerificarExistencia(context.Background(), "existe")
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = client.VerificarExistencia(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.False(t, existe)
}
