package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vehireview/internal/config"
	"vehireview/internal/repositories"
	"vehireview/internal/services"
	mem "vehireview/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	likes services.LikeServiceInterface,
	revoked mem.RevokedTokenStore,
	presenter *services.Presenter,
	cfg *config.Config,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, likes, revoked, presenter, cfg, log.Named("accounts"))
}
