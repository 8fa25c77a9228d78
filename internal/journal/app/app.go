package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/journal/internal/journal/http"
	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/internal/journal/store"
	"github.com/aussiebroadwan/journal/internal/journal/store/drivers/jsonfile"
	"github.com/aussiebroadwan/journal/internal/journal/store/drivers/s3snapshot"
	"github.com/aussiebroadwan/journal/pkg/cryptox"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires configuration, storage, services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	repo *store.Repository

	tokenService      *service.TokenService
	accountService    *service.AccountService
	submissionService *service.SubmissionService
	reviewer          service.Reviewer

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "journal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Fail at startup rather than on the first registration.
	cryptox.SetPepperPath(cfg.PepperFile)
	if _, err := cryptox.GetPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	ctx := context.Background()
	if err := app.initStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.repo.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("journal service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store_driver", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the store. A write that is
// mid-save finishes before the store is closed.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down journal service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.repo.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("journal service stopped")
	return nil
}

func (app *Application) initStore(ctx context.Context) error {
	var (
		st  store.Store
		err error
	)

	switch app.cfg.StoreDriver {
	case DriverS3:
		client, cerr := s3snapshot.NewClient(ctx, s3snapshot.Config{
			Region:       app.cfg.S3.Region,
			Endpoint:     app.cfg.S3.Endpoint,
			AccessKey:    app.cfg.S3.AccessKey,
			SecretKey:    app.cfg.S3.SecretKey,
			UsePathStyle: app.cfg.S3.UsePathStyle,
		})
		if cerr != nil {
			return fmt.Errorf("failed to create s3 client: %w", cerr)
		}
		st, err = s3snapshot.NewStore(client, app.cfg.S3.Bucket, app.cfg.S3.Key)
		app.logger.Info("using s3 snapshot store", "bucket", app.cfg.S3.Bucket, "key", app.cfg.S3.Key)
	default:
		st, err = jsonfile.NewStore(app.cfg.StoreFile)
		app.logger.Info("using json file store", "path", app.cfg.StoreFile)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	app.repo = store.NewRepository(st, app.cfg.StorageTimeout)

	// An unreachable store is reported by /readyz, not fatal.
	if err := app.repo.Ping(ctx); err != nil {
		app.logger.Warn("store not reachable at startup", "error", err)
	}
	return nil
}

func (app *Application) initServices() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JOURNAL_JWT_SECRET not set, using an ephemeral signing secret; tokens will not survive a restart")
	}

	tokens, err := service.NewTokenService([]byte(secret), app.cfg.Issuer, time.Now)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	accounts, err := service.NewAccountService(app.repo, time.Now)
	if err != nil {
		return fmt.Errorf("failed to initialize account service: %w", err)
	}

	app.tokenService = tokens
	app.accountService = accounts
	app.submissionService = &service.SubmissionService{Repo: app.repo}
	app.reviewer = service.NewKeywordReviewer()
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokenService,
		BuildVersion,
		app.repo,
		app.logger,
	)

	router.AccountService = app.accountService
	router.SubmissionService = app.submissionService
	router.Reviewer = app.reviewer
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
