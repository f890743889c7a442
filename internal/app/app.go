package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/config"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/gateway"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/guard"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/handler"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/lifecycle"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/middleware"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/router"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	identity   *service.IdentityService
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CeremonyPortal",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.initServices()

	return app, nil
}

func (a *App) initServices() {
	backend := gateway.New(gateway.Config{
		BaseURL:       a.cfg.Backend.BaseURL,
		Timeout:       a.cfg.Backend.Timeout,
		RetryAttempts: a.cfg.Backend.RetryAttempts,
		RetryDelay:    a.cfg.Backend.RetryDelay,
	})

	provider := identity.NewClient(identity.Config{
		BaseURL:      a.cfg.Identity.BaseURL,
		TokenBaseURL: a.cfg.Identity.TokenBaseURL,
		APIKey:       a.cfg.Identity.APIKey,
		Timeout:      a.cfg.Identity.Timeout,
	})
	store := identity.NewStore()

	policy := lifecycle.CancelPolicy{RequirePaid: a.cfg.Booking.CancelRequiresPaid}

	identityService := service.NewIdentityService(provider, backend, store, a.log)
	catalogService := service.NewCatalogService(backend)
	bookingService := service.NewBookingService(backend, backend, policy, a.log)
	a.identity = identityService

	h := handler.NewHandler(identityService, catalogService, bookingService, policy)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		guard.Middleware(store),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Identity resolves in the background; the guard answers Resolving until
	// the store settles.
	go a.identity.Bootstrap(ctx, a.cfg.Session.RefreshToken)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
