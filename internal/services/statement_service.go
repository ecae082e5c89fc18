package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"
)

type statementService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewStatementService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StatementServiceInterface {
	return &statementService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetStatement returns the account with its full history, oldest first, and
// the deposit and withdrawal totals
func (s *statementService) GetStatement(ctx context.Context, accountNumber string) (*models.AccountStatement, error) {
	account, err := s.accountRepo.FindByNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	transactions, err := s.transactionRepo.ByAccount(account.AccountNumber())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch transactions for statement",
			"account_number", maskAccountNumber(account.AccountNumber()),
			"error", err,
		)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	statement := &models.AccountStatement{
		Account:      account,
		Transactions: transactions,
		Summary:      models.Summarize(transactions),
	}

	s.auditLogger.LogStatementGenerated(ctx, account.AccountNumber(), statement.Summary.TransactionCount)
	s.metrics.IncrementCounter("statement_generated", nil)

	return statement, nil
}
