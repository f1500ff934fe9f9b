package controllers_fx

import (
	"go.uber.org/fx"

	"tripdesk/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewPhotosController),
	fx.Provide(controllers.NewAuthController))
