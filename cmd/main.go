// Package main wires the HTTP server for the contact directory service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"contact-directory/internal/gateway"
	"contact-directory/internal/metrics"
	"contact-directory/internal/transport/http/server/handlers-fiber"
	"contact-directory/internal/usecase"
	"contact-directory/internal/usecase/domain"

	"contact-directory/config"
	"contact-directory/internal/oapi"
	"contact-directory/internal/repository"
	"contact-directory/internal/transport/http/middleware"
	"contact-directory/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Repository.Backend, "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	upstream, err := gateway.New(cfg.Upstream, log.Named("gateway"), gateway.WithMetrics(m))
	if err != nil {
		log.Errorw("upstream client initialization error", "error", err)
		return
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log.Named("usecase"), ctx, repo, upstream, timeout,
		domain.WithMetrics(m),
		domain.WithResolveConcurrency(cfg.Upstream.ResolveConcurrency),
	)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log.Named("http")))
	serv.Use(middleware.Metrics(m))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if cfg.Metrics.Enabled {
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	h := handlers_fiber.NewHandler(log.Named("handlers"), uc)
	oapi.RegisterHandlers(serv, h)

	go func() {
		log.Infow("server listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
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
