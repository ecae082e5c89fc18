package services

import (
	"context"
	"time"

	"bank-account-manager/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerServiceInterface registers customers and assigns their ids
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, kind models.CustomerType, name string, age int, contact, address string) (*models.Customer, error)
	GetCustomer(customerID string) (*models.Customer, error)
	ListCustomers() ([]*models.Customer, error)
	CountCustomers() (int, error)
}

// AccountServiceInterface opens accounts and answers registry queries
type AccountServiceInterface interface {
	OpenAccount(ctx context.Context, customer *models.Customer, kind models.AccountType, initialBalance decimal.Decimal) (*models.Account, error)
	FindAccount(accountNumber string) (*models.Account, error)
	ListAccounts() ([]*models.Account, error)
	TotalBalance() (decimal.Decimal, error)
	CountAccounts() (int, error)
}

// TransactionServiceInterface is the transaction engine: it applies deposits
// and withdrawals to accounts and records the successful ones in the ledger
type TransactionServiceInterface interface {
	ProcessTransaction(ctx context.Context, account *models.Account, amount decimal.Decimal, kind models.TransactionType) (*models.Transaction, error)
	ProcessByAccountNumber(ctx context.Context, accountNumber string, kind models.TransactionType, amount decimal.Decimal) (*models.Transaction, error)
	NextTransactionID() string
	TransactionsForAccount(accountNumber string) ([]*models.Transaction, error)
	CountTransactions() (int, error)
}

// StatementServiceInterface provides account transaction histories
type StatementServiceInterface interface {
	GetStatement(ctx context.Context, accountNumber string) (*models.AccountStatement, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID string, customerType models.CustomerType)
	LogAccountOpened(ctx context.Context, accountNumber string, accountType models.AccountType, customerID string, initialBalance string)
	LogTransactionProcessed(ctx context.Context, transactionID, accountNumber string, transactionType models.TransactionType, amount string, durationMs int64)
	LogTransactionRejected(ctx context.Context, accountNumber string, transactionType models.TransactionType, amount string, reason string)
	LogBalanceUpdate(ctx context.Context, accountNumber string, oldBalance, newBalance string, transactionID string)
	LogStatementGenerated(ctx context.Context, accountNumber string, transactionCount int)
}
