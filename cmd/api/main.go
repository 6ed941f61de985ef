package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vivek068790/Employee-Register-App/internal/app"
	"github.com/vivek068790/Employee-Register-App/internal/bootstrap"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
	"github.com/vivek068790/Employee-Register-App/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	if err := run(logger); err != nil {
		logger.Error("api exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run owns every deferred cleanup, so main only exits after they ran.
func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// build dependency + routes
	application, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("close app failed", zap.Error(err))
		}
	}()
	application.RegisterRoutes(r)

	if err := application.StartBackground(ctx); err != nil {
		return fmt.Errorf("start background jobs: %w", err)
	}

	return bootstrap.StartHTTPServer(r, cfg, application.AuditLogger())
}
