package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	mem "vehireview/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens(lc fx.Lifecycle, log *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("swept revoked tokens", zap.Int("removed", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}
