package repositories

import (
	"fmt"

	"bank-account-manager/internal/models"
)

// memoryTransactionRepository is an append-only, unbounded ledger
type memoryTransactionRepository struct {
	transactions []*models.Transaction
	ids          map[string]struct{}
}

// NewMemoryTransactionRepository creates an empty in-process ledger
func NewMemoryTransactionRepository() TransactionRepositoryInterface {
	return &memoryTransactionRepository{
		ids: make(map[string]struct{}),
	}
}

func (r *memoryTransactionRepository) Append(transaction *models.Transaction) error {
	if transaction == nil {
		return ErrNilTransaction
	}
	if _, ok := r.ids[transaction.TransactionID()]; ok {
		return fmt.Errorf("%w: %s", ErrTransactionIDExists, transaction.TransactionID())
	}

	r.ids[transaction.TransactionID()] = struct{}{}
	r.transactions = append(r.transactions, transaction)
	return nil
}

// ByAccount scans the ledger for records of one account, oldest first
func (r *memoryTransactionRepository) ByAccount(accountNumber string) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	for _, transaction := range r.transactions {
		if transaction.AccountNumber() == accountNumber {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (r *memoryTransactionRepository) Count() (int, error) {
	return len(r.transactions), nil
}
