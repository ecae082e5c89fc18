package services

import (
	"context"
	"log/slog"
	"time"

	"bank-account-manager/internal/models"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

// LogCustomerCreated records a new customer. Personal details stay out of the log.
func (al *AuditLogger) LogCustomerCreated(ctx context.Context, customerID string, customerType models.CustomerType) {
	al.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customerID),
		slog.String("customer_type", string(customerType)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountOpened(ctx context.Context, accountNumber string, accountType models.AccountType, customerID string, initialBalance string) {
	al.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_number", maskAccountNumber(accountNumber)),
		slog.String("account_type", string(accountType)),
		slog.String("customer_id", customerID),
		slog.String("initial_balance", initialBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionProcessed(ctx context.Context, transactionID, accountNumber string, transactionType models.TransactionType, amount string, durationMs int64) {
	al.logger.InfoContext(ctx, "transaction processed",
		slog.String("event_type", "transaction_processed"),
		slog.String("transaction_id", transactionID),
		slog.String("account_number", maskAccountNumber(accountNumber)),
		slog.String("transaction_type", string(transactionType)),
		slog.String("amount", amount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionRejected(ctx context.Context, accountNumber string, transactionType models.TransactionType, amount string, reason string) {
	al.logger.WarnContext(ctx, "transaction rejected",
		slog.String("event_type", "transaction_rejected"),
		slog.String("account_number", maskAccountNumber(accountNumber)),
		slog.String("transaction_type", string(transactionType)),
		slog.String("amount", amount),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountNumber string, oldBalance, newBalance string, transactionID string) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_number", maskAccountNumber(accountNumber)),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("transaction_id", transactionID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStatementGenerated(ctx context.Context, accountNumber string, transactionCount int) {
	al.logger.InfoContext(ctx, "statement generated",
		slog.String("event_type", "statement_generated"),
		slog.String("account_number", maskAccountNumber(accountNumber)),
		slog.Int("transaction_count", transactionCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func maskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return "****"
	}
	lastFour := accountNumber[len(accountNumber)-4:]
	return "****" + lastFour
}
