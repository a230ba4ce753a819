package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"favoritos/internal/infra"
	"favoritos/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
