package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = repositories.ErrAccountNotFound
	ErrNegativeDeposit = errors.New("initial deposit cannot be negative")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	sequence    *Sequence
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates the account factory. Savings and checking
// accounts draw their numbers from the same sequence.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		sequence:    NewSequence(),
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccount creates an active account for customer and registers it
func (s *accountService) OpenAccount(ctx context.Context, customer *models.Customer, kind models.AccountType, initialBalance decimal.Decimal) (*models.Account, error) {
	if customer == nil {
		return nil, models.ErrCustomerRequired
	}
	if !models.IsValidAccountType(kind) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidAccountType, kind)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeDeposit, initialBalance.StringFixed(2))
	}

	account, err := models.OpenAccount(models.FormatAccountNumber(s.sequence.Next()), kind, customer, initialBalance)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Add(account); err != nil {
		s.logger.ErrorContext(ctx, "failed to register account",
			"error", err,
			"account_number", maskAccountNumber(account.AccountNumber()),
		)
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	s.auditLogger.LogAccountOpened(ctx, account.AccountNumber(), account.Type(), customer.CustomerID(), initialBalance.StringFixed(2))
	s.metrics.IncrementCounter("account_opened", map[string]string{
		"account_type": account.AccountType(),
	})
	s.recordRegistryGauges(ctx)

	return account, nil
}

// FindAccount looks an account up by its exact number
func (s *accountService) FindAccount(accountNumber string) (*models.Account, error) {
	return s.accountRepo.FindByNumber(accountNumber)
}

func (s *accountService) ListAccounts() ([]*models.Account, error) {
	return s.accountRepo.All()
}

func (s *accountService) TotalBalance() (decimal.Decimal, error) {
	return s.accountRepo.TotalBalance()
}

func (s *accountService) CountAccounts() (int, error) {
	return s.accountRepo.Count()
}

func (s *accountService) recordRegistryGauges(ctx context.Context) {
	count, err := s.accountRepo.Count()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to count accounts for metrics", "error", err)
		return
	}
	total, err := s.accountRepo.TotalBalance()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to sum balances for metrics", "error", err)
		return
	}

	s.metrics.RecordGauge("accounts_total", float64(count), nil)
	s.metrics.RecordGauge("bank_balance_total", total.InexactFloat64(), nil)
}
