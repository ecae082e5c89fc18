package repositories

import (
	"bank-account-manager/internal/models"

	"gorm.io/gorm"
)

// unitOfWork runs the balance update and the ledger insert in one database
// transaction
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a gorm-backed unit of work
func NewUnitOfWork(db *gorm.DB) UnitOfWorkInterface {
	return &unitOfWork{
		db: db,
	}
}

// CommitTransaction updates the account and appends the transaction with
// repositories scoped to the same database transaction
func (u *unitOfWork) CommitTransaction(account *models.Account, transaction *models.Transaction) error {
	if account == nil {
		return ErrNilAccount
	}
	if transaction == nil {
		return ErrNilTransaction
	}

	return u.db.Transaction(func(tx *gorm.DB) error {
		if err := NewAccountRepository(tx).Update(account); err != nil {
			return err
		}
		return NewTransactionRepository(tx).Append(transaction)
	})
}

// memoryUnitOfWork pairs the in-process registries. A failed append puts the
// stored account back to its previous state.
type memoryUnitOfWork struct {
	accounts AccountRepositoryInterface
	ledger   TransactionRepositoryInterface
}

// NewMemoryUnitOfWork creates a unit of work over in-process registries
func NewMemoryUnitOfWork(accounts AccountRepositoryInterface, ledger TransactionRepositoryInterface) UnitOfWorkInterface {
	return &memoryUnitOfWork{
		accounts: accounts,
		ledger:   ledger,
	}
}

func (u *memoryUnitOfWork) CommitTransaction(account *models.Account, transaction *models.Transaction) error {
	if account == nil {
		return ErrNilAccount
	}
	if transaction == nil {
		return ErrNilTransaction
	}

	stored, err := u.accounts.FindByNumber(account.AccountNumber())
	if err != nil {
		return err
	}
	previous := stored.Clone()

	if err := u.accounts.Update(account); err != nil {
		return err
	}

	if err := u.ledger.Append(transaction); err != nil {
		if restoreErr := u.accounts.Update(previous); restoreErr != nil {
			return restoreErr
		}
		return err
	}
	return nil
}
