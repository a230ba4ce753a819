package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"favoritos/internal/models/response_models"
	"favoritos/pkg/utils"
)

type ProdutoAPIInterface interface {
	ObterProduto(ctx context.Context, produtoID string) (*response_models.ProdutoResponse, error)
	VerificarExistencia(ctx context.Context, produtoID string) (bool, error)
}

type ProdutoAPIClient struct {
	httpClient *http.Client
	urlBase    string
}

func NewProdutoAPIClient(urlBase string) ProdutoAPIInterface {
	return &ProdutoAPIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		urlBase:    urlBase,
	}
}

// ObterProduto fetches one product from the external catalog. A 404 means the
// product does not exist and returns (nil, nil); any other non-200 status or
// transport failure collapses into ErrProdutoUnavailable.
func (p *ProdutoAPIClient) ObterProduto(ctx context.Context, produtoID string) (*response_models.ProdutoResponse, error) {
	url := fmt.Sprintf("%s/products/%s/", p.urlBase, produtoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("erro de comunicação com a API de produtos: %v", err)
		return nil, utils.ErrProdutoUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var produto response_models.ProdutoResponse
		if err := json.NewDecoder(resp.Body).Decode(&produto); err != nil {
			log.Printf("resposta inválida da API de produtos: %v", err)
			return nil, utils.ErrProdutoUnavailable
		}
		return &produto, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Printf("status inesperado da API de produtos: %s", resp.Status)
		return nil, utils.ErrProdutoUnavailable
	}
}

func (p *ProdutoAPIClient) VerificarExistencia(ctx context.Context, produtoID string) (bool, error) {
	produto, err := p.ObterProduto(ctx, produtoID)
	if err != nil {
		return false, err
	}
	return produto != nil, nil
}
