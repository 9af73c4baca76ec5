package vehicle_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vehireview/internal/repositories"
	"vehireview/internal/services"
)

var Module = fx.Provide(
	provideVehicleRepo, provideVehicleService)

func provideVehicleRepo(db *gorm.DB) repositories.VehicleRepository {
	return repositories.NewVehicleRepository(db)
}

func provideVehicleService(vehicleRepo repositories.VehicleRepository, presenter *services.Presenter, log *zap.Logger) services.VehicleServiceInterface {
	return services.NewVehicleService(vehicleRepo, presenter, log.Named("vehicles"))
}
