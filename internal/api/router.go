package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"vehireview/internal/api/controllers"
	"vehireview/internal/config"
	"vehireview/internal/models/db_models"
	mem "vehireview/pkg/memcache"
	"vehireview/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Revoked  mem.RevokedTokenStore
	Limiter  *middleware.RateLimiter
	Accounts *controllers.AccountController
	Reviews  *controllers.ReviewController
	Vehicles *controllers.VehicleController
	Health   *controllers.HealthController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	secret := []byte(p.Config.JWTSecret)
	auth := middleware.JWTAuthMiddleware(secret, p.Revoked)
	optionalAuth := middleware.OptionalAuthMiddleware(secret, p.Revoked)
	admin := middleware.RoleMiddleware(db_models.RoleAdmin)
	limit := p.Limiter.Middleware()

	r.GET("/healthz", p.Health.Healthz)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", limit, p.Accounts.Register)
	accountGroup.POST("/login", limit, p.Accounts.Login)
	accountGroup.POST("/logout", auth, p.Accounts.Logout)
	accountGroup.GET("/me", auth, p.Accounts.Me)
	accountGroup.GET("/me/reviews", auth, p.Accounts.MyReviews)
	accountGroup.GET("/:id", auth, p.Accounts.GetAccount)
	accountGroup.GET("", auth, admin, p.Accounts.GetAllAccounts)

	reviewGroup := r.Group("/reviews")
	reviewGroup.GET("", p.Reviews.ListReviews)
	reviewGroup.GET("/duplicate", auth, p.Reviews.CheckDuplicate)
	reviewGroup.GET("/:id", optionalAuth, p.Reviews.GetReview)
	reviewGroup.POST("", auth, limit, p.Reviews.CreateReview)
	reviewGroup.PUT("/:id", auth, limit, p.Reviews.UpdateReview)
	reviewGroup.DELETE("/:id", auth, p.Reviews.DeleteReview)
	reviewGroup.POST("/:id/like", auth, limit, p.Reviews.LikeReview)
	reviewGroup.DELETE("/:id/like", auth, p.Reviews.UnlikeReview)

	vehicleGroup := r.Group("/vehicles")
	vehicleGroup.GET("", p.Vehicles.ListVehicles)
	vehicleGroup.GET("/:id", p.Vehicles.GetVehicle)
	vehicleGroup.POST("", auth, admin, p.Vehicles.CreateVehicle)
	vehicleGroup.DELETE("/:id", auth, admin, p.Vehicles.DeleteVehicle)

	makerGroup := r.Group("/makers")
	makerGroup.GET("", p.Vehicles.ListMakers)
	makerGroup.POST("", auth, admin, p.Vehicles.CreateMaker)
}
