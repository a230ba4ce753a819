package services

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"favoritos/internal/models/db_models"
	"favoritos/internal/models/response_models"
	"favoritos/internal/repositories"
	"favoritos/pkg/utils"
)

type FavoritoServiceInterface interface {
	Add(ctx context.Context, cliente *db_models.Cliente, produtoID string) error
	Remove(ctx context.Context, cliente *db_models.Cliente, produtoID string) error
	List(ctx context.Context, cliente *db_models.Cliente, pagina int, tamanho int) ([]response_models.ProdutoResponse, int64, error)
}

type FavoritoService struct {
	favoritoRepo repositories.FavoritoRepository
	produtoAPI   ProdutoAPIInterface
}

func NewFavoritoService(favoritoRepo repositories.FavoritoRepository, produtoAPI ProdutoAPIInterface) FavoritoServiceInterface {
	return &FavoritoService{
		favoritoRepo: favoritoRepo,
		produtoAPI:   produtoAPI,
	}
}

// Add confirms the product exists in the external catalog before inserting the
// pair; the composite unique index turns a duplicate into ErrFavoritoExists.
func (f *FavoritoService) Add(ctx context.Context, cliente *db_models.Cliente, produtoID string) error {
	existe, err := f.produtoAPI.VerificarExistencia(ctx, produtoID)
	if err != nil {
		return err
	}
	if !existe {
		log.Printf("tentativa de favoritar produto inexistente: cliente=%s produto=%s", cliente.ID, produtoID)
		return utils.ErrProdutoNotFound
	}

	favorito := &db_models.Favorito{
		ClienteID: cliente.ID,
		ProdutoID: produtoID,
	}
	if err := f.favoritoRepo.Insert(ctx, favorito); err != nil {
		if errors.Is(err, utils.ErrFavoritoExists) {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoritoService) Remove(ctx context.Context, cliente *db_models.Cliente, produtoID string) error {
	err := f.favoritoRepo.Delete(ctx, cliente.ID, produtoID)
	if err != nil {
		if errors.Is(err, utils.ErrFavoritoNotFound) {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// List pages the favorite ids and enriches them concurrently against the
// catalog. Products the catalog no longer knows are dropped from the page, but
// the returned total keeps counting them; a catalog outage fails the whole
// page instead.
func (f *FavoritoService) List(ctx context.Context, cliente *db_models.Cliente, pagina int, tamanho int) ([]response_models.ProdutoResponse, int64, error) {
	total, err := f.favoritoRepo.CountByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	if total == 0 {
		return []response_models.ProdutoResponse{}, 0, nil
	}

	ids, err := f.favoritoRepo.ListProdutoIDs(ctx, cliente.ID, pagina, tamanho)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	if len(ids) == 0 {
		return []response_models.ProdutoResponse{}, total, nil
	}

	resultados := make([]*response_models.ProdutoResponse, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		group.Go(func() error {
			produto, err := f.produtoAPI.ObterProduto(groupCtx, id)
			if err != nil {
				return err
			}
			resultados[i] = produto
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	produtos := make([]response_models.ProdutoResponse, 0, len(ids))
	for _, produto := range resultados {
		if produto != nil {
			produtos = append(produtos, *produto)
		}
	}

	return produtos, total, nil
}
