package controllers_fx

import (
	"go.uber.org/fx"

	"favoritos/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAutenticacaoController),
	fx.Provide(controllers.NewClienteController),
	fx.Provide(controllers.NewFavoritoController),
	fx.Provide(controllers.NewHealthcheckController))
