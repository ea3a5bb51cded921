package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foryous/reviews-api/internal/application"
	"github.com/foryous/reviews-api/internal/container"
	"github.com/foryous/reviews-api/internal/infrastructure/gormdb"
	handlers "github.com/foryous/reviews-api/internal/interface/http"
	"github.com/foryous/reviews-api/internal/interface/middleware"
	"github.com/foryous/reviews-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetDB()

	var limiter []gin.HandlerFunc
	if rdb := container.GetRedis(); rdb != nil {
		limiter = append(limiter, middleware.RateLimit(rdb, cfg.RateLimitPerMin, time.Minute, middleware.KeyByIP()))
	}

	accountSvc := application.NewAccountService(gormdb.NewAccountRepository(db), logger)
	r.Add(modules.NewAccount(handlers.NewAccountHandler(accountSvc, logger), limiter...))

	userSvc := application.NewUserService(gormdb.NewUserRepository(db), cfg.UploadDir, logger)
	r.Add(modules.NewUser(handlers.NewUserHandler(userSvc, logger), limiter...))
}
