package review_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vehireview/internal/config"
	"vehireview/internal/repositories"
	"vehireview/internal/review"
	"vehireview/internal/services"
	"vehireview/pkg/utils"
)

var Module = fx.Provide(
	provideReviewRepo,
	provideLikeRepo,
	provideLocation,
	provideMessages,
	provideValidator,
	providePresenter,
	providePageSizes,
	provideReviewService,
	provideLikeService,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideLikeRepo(db *gorm.DB) repositories.LikeRepository {
	return repositories.NewLikeRepository(db)
}

func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadLocation(cfg.Timezone)
}

func provideMessages(cfg *config.Config) review.Messages {
	return review.MessagesFor(cfg.Locale)
}

func provideValidator(reviewRepo repositories.ReviewRepository, messages review.Messages, loc *time.Location) *review.Validator {
	return review.NewValidator(reviewRepo, messages, loc)
}

func providePresenter(messages review.Messages, loc *time.Location) *services.Presenter {
	return services.NewPresenter(messages, loc)
}

func providePageSizes(cfg *config.Config) services.PageSizes {
	return services.PageSizes{Home: cfg.HomePageSize, List: cfg.ListPageSize}
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	vehicleRepo repositories.VehicleRepository,
	likeRepo repositories.LikeRepository,
	validator *review.Validator,
	presenter *services.Presenter,
	sizes services.PageSizes,
	log *zap.Logger,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, vehicleRepo, likeRepo, validator, presenter, sizes, log.Named("reviews"))
}

func provideLikeService(
	likeRepo repositories.LikeRepository,
	reviewRepo repositories.ReviewRepository,
	presenter *services.Presenter,
	sizes services.PageSizes,
	log *zap.Logger,
) services.LikeServiceInterface {
	return services.NewLikeService(likeRepo, reviewRepo, presenter, sizes, log.Named("likes"))
}
