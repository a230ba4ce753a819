package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"favoritos/cmd/fx/autenticacao_fx"
	"favoritos/cmd/fx/cliente_fx"
	"favoritos/cmd/fx/config_fx"
	"favoritos/cmd/fx/controllers_fx"
	"favoritos/cmd/fx/db_fx"
	"favoritos/cmd/fx/favorito_fx"
	"favoritos/cmd/fx/produto_api_fx"
	"favoritos/internal/api/controllers"
	"favoritos/internal/infra"
	"favoritos/internal/services"
	"favoritos/pkg/config"
	"favoritos/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		cliente_fx.Module,
		autenticacao_fx.Module,
		produto_api_fx.Module,
		favorito_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("%s escutando na porta %s", cfg.TituloAPI, cfg.Porta)
				if err := engine.Run(":" + cfg.Porta); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	clienteService services.ClienteServiceInterface,
	autenticacaoController *controllers.AutenticacaoController,
	clienteController *controllers.ClienteController,
	favoritoController *controllers.FavoritoController,
	healthcheckController *controllers.HealthcheckController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, clienteService,
		autenticacaoController, clienteController, favoritoController, healthcheckController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	clienteService services.ClienteServiceInterface,
	autenticacaoController *controllers.AutenticacaoController,
	clienteController *controllers.ClienteController,
	favoritoController *controllers.FavoritoController,
	healthcheckController *controllers.HealthcheckController) {

	api := r.Group("/api/v1")

	api.POST("/auth/token", autenticacaoController.Token)
	api.GET("/healthcheck/", healthcheckController.Check)

	clientes := api.Group("/clientes")
	clientes.POST("/", clienteController.Create)

	// everything under /clientes/:id is bearer-authenticated and self-only
	proprio := clientes.Group("/:id",
		middleware.JWTAuthMiddleware(clienteService, []byte(cfg.ChaveSegurancaJWT)),
		middleware.SelfOnlyMiddleware())
	proprio.GET("", clienteController.Get)
	proprio.PUT("", clienteController.Update)
	proprio.DELETE("", clienteController.Delete)

	favoritosGroup := proprio.Group("/favoritos")
	favoritosGroup.GET("/", favoritoController.List)
	favoritosGroup.POST("/", favoritoController.Add)
	favoritosGroup.DELETE("/:produto_id", favoritoController.Remove)
}
