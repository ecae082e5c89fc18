package cli

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"time"

	"bank-account-manager/internal/services"
	"bank-account-manager/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
)

// Services groups what the console needs from the core
type Services struct {
	Customers    services.CustomerServiceInterface
	Accounts     services.AccountServiceInterface
	Transactions services.TransactionServiceInterface
	Statements   services.StatementServiceInterface

	// Metrics is nil when metrics are disabled
	Metrics prometheus.Gatherer
}

// App is the interactive menu bound to one input and one output stream
type App struct {
	console *Console
	logger  *slog.Logger

	accountHandler     *AccountHandler
	transactionHandler *TransactionHandler
	metricsHandler     *MetricsHandler
}

// NewApp wires the handlers onto a console reading from in and writing to out
func NewApp(in io.Reader, out io.Writer, svc Services, maxRetries int, logger *slog.Logger) *App {
	console := NewConsole(in, out, maxRetries)
	v := validation.GetValidator()

	return &App{
		console:            console,
		logger:             logger,
		accountHandler:     NewAccountHandler(console, v, svc.Customers, svc.Accounts, logger),
		transactionHandler: NewTransactionHandler(console, v, svc.Accounts, svc.Transactions, svc.Statements, time.Now, logger),
		metricsHandler:     NewMetricsHandler(console, svc.Metrics),
	}
}

const banner = `||====================================||
  BANK ACCOUNT MANAGEMENT - MAIN MENU
||====================================||`

const menu = `
1. Create Account
2. View Accounts
3. Process Transaction
4. View Transaction History
5. View Metrics
6. Exit`

// Run shows the menu until the operator exits or the input ends
func (a *App) Run(ctx context.Context) error {
	a.console.Println(banner)

	for {
		a.console.Println(menu)
		choice, err := a.console.ReadLine("Enter choice: ")
		if err != nil {
			return a.stop(err)
		}

		var action func(context.Context) error
		switch choice {
		case "1":
			action = a.accountHandler.CreateAccount
		case "2":
			action = a.accountHandler.ViewAccounts
		case "3":
			action = a.transactionHandler.ProcessTransaction
		case "4":
			action = a.transactionHandler.ViewTransactionHistory
		case "5":
			action = a.metricsHandler.ViewMetrics
		case "6":
			a.console.Println("Goodbye!")
			return nil
		default:
			a.console.Println("Please select a number between [1-6]")
			continue
		}

		if err := a.recoverAction(ctx, action); err != nil && !stderrors.Is(err, ErrRetriesExhausted) {
			return a.stop(err)
		}
	}
}

func (a *App) stop(err error) error {
	if stderrors.Is(err, io.EOF) {
		a.console.Println("\nGoodbye!")
		return nil
	}
	a.logger.Error("Console session ended with error", "error", err)
	return err
}
