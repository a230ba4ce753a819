package favorito_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"favoritos/internal/repositories"
	"favoritos/internal/services"
)

var Module = fx.Provide(
	provideFavoritoService, provideFavoritoRepo)

func provideFavoritoRepo(db *gorm.DB) repositories.FavoritoRepository {
	return repositories.NewFavoritoRepository(db)
}

func provideFavoritoService(favoritoRepo repositories.FavoritoRepository, produtoAPI services.ProdutoAPIInterface) services.FavoritoServiceInterface {
	return services.NewFavoritoService(favoritoRepo, produtoAPI)
}
