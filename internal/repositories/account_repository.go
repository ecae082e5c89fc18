package repositories

import (
	"errors"
	"fmt"

	"bank-account-manager/internal/database"
	"bank-account-manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository stores accounts through gorm. The owning customer row
// must already exist; Add never writes it.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new gorm-backed account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Add inserts a new account row
func (r *accountRepository) Add(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}

	if err := r.db.Omit(clause.Associations).Create(toAccountRecord(account)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrAccountNumberExists, account.AccountNumber())
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update writes the mutable state of an account: balance and status
func (r *accountRepository) Update(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}

	result := r.db.Model(&database.AccountRecord{}).
		Where("account_number = ?", account.AccountNumber()).
		Updates(map[string]interface{}{
			"balance": account.Balance(),
			"status":  account.Status(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// FindByNumber retrieves an account and its customer by exact account number
func (r *accountRepository) FindByNumber(accountNumber string) (*models.Account, error) {
	var record database.AccountRecord
	if err := r.db.Preload("Customer").
		Where("account_number = ?", accountNumber).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return accountFromRecord(&record)
}

// All retrieves every account in insertion order
func (r *accountRepository) All() ([]*models.Account, error) {
	var records []database.AccountRecord
	if err := r.db.Preload("Customer").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(records))
	for i := range records {
		account, err := accountFromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// TotalBalance sums balances in decimal rather than in SQL
func (r *accountRepository) TotalBalance() (decimal.Decimal, error) {
	var balances []decimal.Decimal
	if err := r.db.Model(&database.AccountRecord{}).Pluck("balance", &balances).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum balances: %w", err)
	}

	total := decimal.Zero
	for _, balance := range balances {
		total = total.Add(balance)
	}
	return total, nil
}

// Count returns the number of stored accounts
func (r *accountRepository) Count() (int, error) {
	var count int64
	if err := r.db.Model(&database.AccountRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return int(count), nil
}
