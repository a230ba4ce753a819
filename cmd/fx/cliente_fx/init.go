package cliente_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"favoritos/internal/repositories"
	"favoritos/internal/services"
)

var Module = fx.Provide(
	provideClienteService, provideClienteRepo)

func provideClienteRepo(db *gorm.DB) repositories.ClienteRepository {
	return repositories.NewClienteRepository(db)
}

func provideClienteService(clienteRepo repositories.ClienteRepository) services.ClienteServiceInterface {
	return services.NewClienteService(clienteRepo)
}
