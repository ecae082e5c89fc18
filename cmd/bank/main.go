package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bank-account-manager/internal/cli"
	"bank-account-manager/internal/config"
	"bank-account-manager/internal/database"
	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/repositories"
	"bank-account-manager/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.Log, os.Stderr)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		fmt.Fprintln(os.Stderr, apperrors.NewErrorResponse(apperrors.SystemConfigurationError, "", apperrors.WithDetails(err.Error())))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("Bank console terminated with error", "error", err)
		os.Exit(1)
	}
}

// run wires storage, services and the console for one session
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	correlationID := uuid.New().String()
	ctx = services.WithCorrelationID(ctx, correlationID)

	repos, closeStore, err := openRepositories(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	metrics := services.NewNoopMetrics()
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		metrics = services.NewPrometheusMetrics(registry)
		gatherer = registry
	}

	auditLogger := services.NewAuditLogger(logger)
	svc := cli.Services{
		Customers:    services.NewCustomerService(repos.customers, auditLogger, metrics, logger),
		Accounts:     services.NewAccountService(repos.accounts, auditLogger, metrics, logger),
		Transactions: services.NewTransactionService(repos.accounts, repos.ledger, repos.unitOfWork, auditLogger, metrics, logger),
		Statements:   services.NewStatementService(repos.accounts, repos.ledger, auditLogger, metrics, logger),
		Metrics:      gatherer,
	}

	logger.Info("Session started",
		"correlation_id", correlationID,
		"environment", cfg.App.Environment,
		"storage_driver", cfg.Storage.Driver,
		"metrics_enabled", cfg.Metrics.Enabled,
	)
	if cfg.IsDevelopment() {
		logger.Debug("Development settings",
			"log_level", cfg.Log.Level,
			"sqlite_dsn", cfg.Storage.DSN,
			"max_retries", cfg.CLI.MaxRetries,
		)
	}

	return cli.NewApp(in, out, svc, cfg.CLI.MaxRetries, logger).Run(ctx)
}

type repositorySet struct {
	customers  repositories.CustomerRepositoryInterface
	accounts   repositories.AccountRepositoryInterface
	ledger     repositories.TransactionRepositoryInterface
	unitOfWork repositories.UnitOfWorkInterface
}

func openRepositories(cfg config.StorageConfig) (repositorySet, func(), error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := database.New(&cfg)
		if err != nil {
			return repositorySet{}, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		if err := db.HealthCheck(); err != nil {
			_ = db.Close()
			return repositorySet{}, nil, fmt.Errorf("sqlite store is not reachable: %w", err)
		}
		return repositorySet{
			customers:  repositories.NewCustomerRepository(db.DB),
			accounts:   repositories.NewAccountRepository(db.DB),
			ledger:     repositories.NewTransactionRepository(db.DB),
			unitOfWork: repositories.NewUnitOfWork(db.DB),
		}, func() { _ = db.Close() }, nil
	default:
		accounts := repositories.NewMemoryAccountRepository()
		ledger := repositories.NewMemoryTransactionRepository()
		return repositorySet{
			customers:  repositories.NewMemoryCustomerRepository(),
			accounts:   accounts,
			ledger:     ledger,
			unitOfWork: repositories.NewMemoryUnitOfWork(accounts, ledger),
		}, func() {}, nil
	}
}

// newLogger writes to w so log lines never interleave with the menu on stdout
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
