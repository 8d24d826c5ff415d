package controllers_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPromptController))
