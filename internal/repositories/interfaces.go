package repositories

import (
	"bank-account-manager/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerRepositoryInterface defines the contract for the customer registry
type CustomerRepositoryInterface interface {
	Add(customer *models.Customer) error
	FindByID(customerID string) (*models.Customer, error)
	All() ([]*models.Customer, error)
	Count() (int, error)
}

// AccountRepositoryInterface defines the contract for the account registry.
// All returns accounts in insertion order.
type AccountRepositoryInterface interface {
	Add(account *models.Account) error
	Update(account *models.Account) error
	FindByNumber(accountNumber string) (*models.Account, error)
	All() ([]*models.Account, error)
	TotalBalance() (decimal.Decimal, error)
	Count() (int, error)
}

// TransactionRepositoryInterface defines the contract for the append-only
// transaction ledger. ByAccount returns records in append order.
type TransactionRepositoryInterface interface {
	Append(transaction *models.Transaction) error
	ByAccount(accountNumber string) ([]*models.Transaction, error)
	Count() (int, error)
}

// UnitOfWorkInterface commits an account's new state and the ledger record
// that produced it together: either both are stored or neither is.
type UnitOfWorkInterface interface {
	CommitTransaction(account *models.Account, transaction *models.Transaction) error
}
