// Package main wires the HTTP server for the GitHub/Jira sync bridge.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/SBianucci/DevSyncAI/config"
	"github.com/SBianucci/DevSyncAI/internal/clients"
	"github.com/SBianucci/DevSyncAI/internal/signature"
	"github.com/SBianucci/DevSyncAI/internal/transport/http/middleware"
	handlers_fiber "github.com/SBianucci/DevSyncAI/internal/transport/http/server/handlers-fiber"
	"github.com/SBianucci/DevSyncAI/internal/usecase"
	"github.com/SBianucci/DevSyncAI/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	cl := clients.New(log, cfg)
	uc := usecase.New(log, ctx, cl, cfg.HTTP.RequestTimeout)
	verifier := signature.NewVerifier(cfg.GitHub.WebhookSecret)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use("/webhook", limiter.New(limiter.Config{
		Max:               cfg.HTTP.RateLimitMax,
		Expiration:        cfg.HTTP.RateLimitWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))

	h := handlers_fiber.NewHandler(log, uc, verifier, cl.Health)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
