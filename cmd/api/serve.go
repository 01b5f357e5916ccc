package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/config"
	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/infrastructure/backend"
	"github.com/billerone/billerone-web/internal/infrastructure/repository"
	"github.com/billerone/billerone-web/internal/presentation/http/middleware"
	"github.com/billerone/billerone-web/internal/presentation/http/routes"
	"github.com/billerone/billerone-web/pkg/logger"
	"github.com/billerone/billerone-web/pkg/printer"
	"github.com/billerone/billerone-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.App.Port = port
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides APP_PORT)")
	return cmd
}

func serve(cfg *config.Config) error {
	log, err := logger.New(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := backend.NewClient(&cfg.Backend, log.Named("backend"))

	// Initialize repositories
	repos := service.Repositories{
		Clients:    repository.NewResourceRepository[entity.Client](client, "clientes"),
		Sellers:    repository.NewResourceRepository[entity.Seller](client, "vendedores"),
		Articles:   repository.NewResourceRepository[entity.Article](client, "articulos"),
		Vendors:    repository.NewResourceRepository[entity.Vendor](client, "proveedores"),
		Entries:    repository.NewResourceRepository[entity.AccountingEntry](client, "asientos", repository.WithListPath("asientos/historial")),
		Invoices:   repository.NewInvoiceRepository(client),
		Accounting: repository.NewAccountingRepository(client),
		Auth:       repository.NewAuthRepository(client),
	}

	draftCfg := service.DraftConfig{
		Tax:           service.TaxPolicy{Rate: cfg.Billing.TaxRate, Places: cfg.Billing.TaxPlaces},
		SearchLimit:   cfg.Billing.SearchLimit,
		KeepOnFailure: cfg.Billing.KeepDraftOnFailure,
	}
	factory := service.NewWorkspaceFactory(repos, draftCfg, cfg.Notice.TTL, log)
	workspaces := service.NewWorkspaceStore(factory, cfg.Session.IdleTTL, cfg.Session.SweepInterval)
	defer workspaces.Close()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize services
	authService := service.NewAuthService(repos.Auth, jwtManager, workspaces, log)
	invoiceService := service.NewInvoiceService(repos.Invoices, draftCfg.Tax, log)
	accountingService := service.NewAccountingService(repos.Accounting, log)
	dashboardService := service.NewDashboardService()

	receiptPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		return err
	}
	receiptService := service.NewReceiptService(receiptPrinter, repos.Invoices, service.ReceiptConfig{
		Header: cfg.Printer.Header,
		Width:  cfg.Printer.Width,
		Tax:    draftCfg.Tax,
	}, log.Named("printer"))

	rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfigFrom(&cfg.RateLimit))
	defer rateLimiter.Close()

	router := routes.Setup(
		routes.NewHandlers(authService, invoiceService, accountingService, dashboardService, receiptService),
		&routes.Deps{
			JWTManager:  jwtManager,
			Workspaces:  workspaces,
			RateLimiter: rateLimiter,
			Cfg:         cfg,
			Logger:      log,
		},
	)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.String("backend", cfg.Backend.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
