package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrBelowMinimumBalance = errors.New("withdrawal would breach the minimum balance")
	ErrAccountRequired     = errors.New("account is required")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	unitOfWork      repositories.UnitOfWorkInterface
	sequence        *Sequence
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewTransactionService creates the transaction engine. It owns the TNX
// sequence; ids are only consumed by transactions that succeed.
func NewTransactionService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	unitOfWork repositories.UnitOfWorkInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		unitOfWork:      unitOfWork,
		sequence:        NewSequence(),
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// ProcessTransaction applies a deposit or withdrawal to account. The rules
// run against a copy; account only takes the new balance once the balance
// and its ledger record have been committed together.
func (s *transactionService) ProcessTransaction(ctx context.Context, account *models.Account, amount decimal.Decimal, kind models.TransactionType) (*models.Transaction, error) {
	startTime := time.Now()

	if account == nil {
		return nil, ErrAccountRequired
	}

	if err := s.checkTransaction(account, amount, kind); err != nil {
		s.reject(ctx, account.AccountNumber(), amount, kind, err)
		return nil, err
	}

	oldBalance := account.Balance()
	updated := account.Clone()
	if err := updated.ApplyTransaction(amount, kind); err != nil {
		s.reject(ctx, account.AccountNumber(), amount, kind, err)
		return nil, err
	}

	transaction, err := models.NewTransaction(
		models.FormatTransactionID(s.sequence.Peek()),
		updated.AccountNumber(),
		kind,
		amount,
		updated.Balance(),
		s.now(),
	)
	if err != nil {
		s.reject(ctx, account.AccountNumber(), amount, kind, err)
		return nil, err
	}

	if err := s.unitOfWork.CommitTransaction(updated, transaction); err != nil {
		err = fmt.Errorf("failed to record transaction: %w", err)
		s.reject(ctx, account.AccountNumber(), amount, kind, err)
		return nil, err
	}
	*account = *updated
	s.sequence.Next()

	duration := time.Since(startTime)
	s.auditLogger.LogBalanceUpdate(ctx, account.AccountNumber(), oldBalance.StringFixed(2), account.Balance().StringFixed(2), transaction.TransactionID())
	s.auditLogger.LogTransactionProcessed(ctx, transaction.TransactionID(), account.AccountNumber(), kind, amount.StringFixed(2), duration.Milliseconds())

	s.metrics.RecordProcessingTime("transaction.processing", duration)
	s.metrics.IncrementCounter("transaction.processed.success", map[string]string{
		"operation": string(kind),
	})
	s.metrics.RecordGauge("transaction_amount", amount.InexactFloat64(), map[string]string{
		"operation": string(kind),
	})
	s.recordBalanceGauge(ctx)

	return transaction, nil
}

// ProcessByAccountNumber looks the account up and runs ProcessTransaction on it
func (s *transactionService) ProcessByAccountNumber(ctx context.Context, accountNumber string, kind models.TransactionType, amount decimal.Decimal) (*models.Transaction, error) {
	account, err := s.accountRepo.FindByNumber(accountNumber)
	if err != nil {
		if !errors.Is(err, repositories.ErrAccountNotFound) {
			err = fmt.Errorf("failed to find account: %w", err)
		}
		s.reject(ctx, accountNumber, amount, kind, err)
		return nil, err
	}

	return s.ProcessTransaction(ctx, account, amount, kind)
}

// NextTransactionID previews the id the next successful transaction receives
func (s *transactionService) NextTransactionID() string {
	return models.FormatTransactionID(s.sequence.Peek())
}

func (s *transactionService) TransactionsForAccount(accountNumber string) ([]*models.Transaction, error) {
	return s.transactionRepo.ByAccount(accountNumber)
}

func (s *transactionService) CountTransactions() (int, error) {
	return s.transactionRepo.Count()
}

// checkTransaction runs the engine-level rules that precede the account's own
func (s *transactionService) checkTransaction(account *models.Account, amount decimal.Decimal, kind models.TransactionType) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", models.ErrInvalidAmount, amount.StringFixed(2))
	}

	if kind == models.TransactionTypeWithdrawal && account.IsSavings() {
		projected := account.Balance().Sub(amount)
		if projected.LessThan(account.MinimumBalance()) {
			return fmt.Errorf("%w: balance %s would fall below %s",
				ErrBelowMinimumBalance, projected.StringFixed(2), account.MinimumBalance().StringFixed(2))
		}
	}

	return nil
}

func (s *transactionService) reject(ctx context.Context, accountNumber string, amount decimal.Decimal, kind models.TransactionType, err error) {
	reason := rejectionReason(err)

	s.auditLogger.LogTransactionRejected(ctx, accountNumber, kind, amount.StringFixed(2), err.Error())
	s.metrics.IncrementCounter("transaction.processed.failed", map[string]string{
		"operation": string(kind),
		"reason":    reason,
	})

	if reason == "storage_error" {
		s.logger.ErrorContext(ctx, "transaction storage failure",
			"error", err,
			"account_number", maskAccountNumber(accountNumber),
		)
	}
}

func (s *transactionService) recordBalanceGauge(ctx context.Context) {
	total, err := s.accountRepo.TotalBalance()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to sum balances for metrics", "error", err)
		return
	}
	s.metrics.RecordGauge("bank_balance_total", total.InexactFloat64(), nil)
}

// rejectionReason maps an engine error onto a metrics label
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrBelowMinimumBalance):
		return "below_minimum_balance"
	case errors.Is(err, models.ErrNegativeBalance):
		return "negative_balance"
	case errors.Is(err, models.ErrOverdraftLimitExceeded):
		return "overdraft_limit_exceeded"
	case errors.Is(err, models.ErrUnknownTransactionType):
		return "unknown_type"
	case errors.Is(err, repositories.ErrAccountNotFound):
		return "account_not_found"
	default:
		return "storage_error"
	}
}
