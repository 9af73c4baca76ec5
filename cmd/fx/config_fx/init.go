package config_fx

import (
	"go.uber.org/fx"
	"vehireview/internal/config"
)

var Module = fx.Provide(config.Load)
