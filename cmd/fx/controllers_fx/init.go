package controllers_fx

import (
	"go.uber.org/fx"
	"vehireview/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewVehicleController),
	fx.Provide(controllers.NewHealthController))
