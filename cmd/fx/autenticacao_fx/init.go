package autenticacao_fx

import (
	"go.uber.org/fx"

	"favoritos/internal/repositories"
	"favoritos/internal/services"
	"favoritos/pkg/config"
)

var Module = fx.Provide(
	provideAutenticacaoService)

func provideAutenticacaoService(clienteRepo repositories.ClienteRepository, cfg *config.Config) services.AutenticacaoServiceInterface {
	return services.NewAutenticacaoService(clienteRepo, []byte(cfg.ChaveSegurancaJWT), cfg.TempoExpiracaoToken)
}
