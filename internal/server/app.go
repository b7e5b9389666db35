// Package server initializes and runs the application: it selects the
// storage backend, wires the services and starts the HTTP API with
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fintrackhq/fintrack/internal/logging"
	"github.com/fintrackhq/fintrack/internal/server/config"
	"github.com/fintrackhq/fintrack/internal/server/httpapi"
	"github.com/fintrackhq/fintrack/internal/server/repositories/repomanager"
	"github.com/fintrackhq/fintrack/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.Manager
	api    *httpapi.Server
}

// NewManager picks the storage backend the configuration names. Backend
// initialization failure (unreachable database, failed migration) is
// returned as-is: the process must abort instead of running half-initialized.
func NewManager(ctx context.Context, cfg *config.Config) (repomanager.Manager, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return repomanager.NewFileManager(cfg.DataDir)
	case config.StoragePostgres:
		return repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	repos, err := NewManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	api := httpapi.NewServer(
		cfg.EndpointAddr,
		logger,
		services.NewAuthService(repos.Users(), cfg),
		services.NewTransactionService(repos.Transactions()),
		services.NewGoalService(repos.Goals()),
		services.NewBillService(repos.Bills()),
		services.NewCategoryService(repos.Categories()),
	)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
