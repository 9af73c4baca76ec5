package middleware_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"vehireview/internal/config"
	"vehireview/pkg/middleware"
)

var Module = fx.Provide(provideRateLimiter)

func provideRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.WriteRatePerMinute, cfg.WriteRateBurst)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go limiter.Run(ctx, 10*time.Minute)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
