package produto_api_fx

import (
	"go.uber.org/fx"

	"favoritos/internal/services"
	"favoritos/pkg/config"
)

var Module = fx.Provide(
	provideProdutoAPIClient)

func provideProdutoAPIClient(cfg *config.Config) services.ProdutoAPIInterface {
	return services.NewProdutoAPIClient(cfg.URLBaseAPIProduto)
}
