package repositories

import (
	"errors"
	"fmt"

	"bank-account-manager/internal/database"
	"bank-account-manager/internal/models"

	"gorm.io/gorm"
)

// transactionRepository is the gorm-backed ledger. Rows are only inserted.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new gorm-backed ledger
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Append inserts a transaction row
func (r *transactionRepository) Append(transaction *models.Transaction) error {
	if transaction == nil {
		return ErrNilTransaction
	}

	if err := r.db.Create(toTransactionRecord(transaction)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrTransactionIDExists, transaction.TransactionID())
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ByAccount retrieves the transactions of one account, oldest first
func (r *transactionRepository) ByAccount(accountNumber string) ([]*models.Transaction, error) {
	var records []database.TransactionRecord
	if err := r.db.Where("account_number = ?", accountNumber).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(records))
	for i := range records {
		transaction, err := transactionFromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

// Count returns the size of the ledger
func (r *transactionRepository) Count() (int, error) {
	var count int64
	if err := r.db.Model(&database.TransactionRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return int(count), nil
}
