package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarefasapp/tarefas/internal/auth"
	"github.com/tarefasapp/tarefas/internal/config"
	"github.com/tarefasapp/tarefas/internal/delivery/http/v1"
	"github.com/tarefasapp/tarefas/internal/services"
)

func MustListenAndServeHTTP(cfg *config.Config, pool *pgxpool.Pool) {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(newCORSMiddleware())
	registerRoutes(router, cfg, pool)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

// The browser client sends the bearer token from another origin.
func newCORSMiddleware() gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	return cors.New(corsCfg)
}

func registerRoutes(router gin.IRouter, cfg *config.Config, pool *pgxpool.Pool) {
	tokens := auth.NewTokenCodec(cfg.JWT.Issuer, []byte(cfg.JWT.SigningKey))
	v1Handler := v1.New(
		globalLogger,
		tokens,
		services.NewAuthService(globalLogger, pool, tokens),
		services.NewTaskService(globalLogger, pool),
		services.NewActivityService(globalLogger, pool),
		services.NewNoteService(globalLogger, pool),
	)
	v1.RegisterRoutes(router, v1Handler)
}
