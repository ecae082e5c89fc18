package repositories

import (
	"fmt"

	"bank-account-manager/internal/models"

	"github.com/shopspring/decimal"
)

// memoryAccountRepository is the in-process account registry. Accounts are
// held by pointer; Update copies the new state into the stored account so
// callers holding that pointer see it.
type memoryAccountRepository struct {
	accounts []*models.Account
}

// NewMemoryAccountRepository creates an empty in-process account registry
func NewMemoryAccountRepository() AccountRepositoryInterface {
	return &memoryAccountRepository{}
}

func (r *memoryAccountRepository) Add(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}
	if r.indexOf(account.AccountNumber()) >= 0 {
		return fmt.Errorf("%w: %s", ErrAccountNumberExists, account.AccountNumber())
	}

	r.accounts = append(r.accounts, account)
	return nil
}

// Update overwrites the stored account that has the same number
func (r *memoryAccountRepository) Update(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}

	i := r.indexOf(account.AccountNumber())
	if i < 0 {
		return ErrAccountNotFound
	}

	if r.accounts[i] != account {
		*r.accounts[i] = *account
	}
	return nil
}

// FindByNumber matches the account number exactly
func (r *memoryAccountRepository) FindByNumber(accountNumber string) (*models.Account, error) {
	i := r.indexOf(accountNumber)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	return r.accounts[i], nil
}

func (r *memoryAccountRepository) All() ([]*models.Account, error) {
	accounts := make([]*models.Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts, nil
}

func (r *memoryAccountRepository) TotalBalance() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, account := range r.accounts {
		total = total.Add(account.Balance())
	}
	return total, nil
}

func (r *memoryAccountRepository) Count() (int, error) {
	return len(r.accounts), nil
}

func (r *memoryAccountRepository) indexOf(accountNumber string) int {
	for i, account := range r.accounts {
		if account.AccountNumber() == accountNumber {
			return i
		}
	}
	return -1
}
