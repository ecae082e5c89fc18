package repositories

import (
	"fmt"

	"bank-account-manager/internal/database"
	"bank-account-manager/internal/models"
)

func toCustomerRecord(customer *models.Customer) *database.CustomerRecord {
	return &database.CustomerRecord{
		CustomerID: customer.CustomerID(),
		Type:       string(customer.Type()),
		Name:       customer.Name(),
		Age:        customer.Age(),
		Contact:    customer.Contact(),
		Address:    customer.Address(),
	}
}

func customerFromRecord(record *database.CustomerRecord) (*models.Customer, error) {
	customer, err := models.NewCustomer(
		record.CustomerID,
		models.CustomerType(record.Type),
		record.Name,
		record.Age,
		record.Contact,
		record.Address,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to restore customer %s: %w", record.CustomerID, err)
	}
	return customer, nil
}

func toAccountRecord(account *models.Account) *database.AccountRecord {
	return &database.AccountRecord{
		AccountNumber: account.AccountNumber(),
		AccountType:   account.AccountType(),
		CustomerID:    account.Customer().CustomerID(),
		Balance:       account.Balance(),
		Status:        account.Status(),
	}
}

// accountFromRecord expects the Customer association to be preloaded
func accountFromRecord(record *database.AccountRecord) (*models.Account, error) {
	customer, err := customerFromRecord(&record.Customer)
	if err != nil {
		return nil, err
	}

	account, err := models.RestoreAccount(
		record.AccountNumber,
		models.AccountType(record.AccountType),
		customer,
		record.Balance,
		record.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to restore account %s: %w", record.AccountNumber, err)
	}
	return account, nil
}

func toTransactionRecord(transaction *models.Transaction) *database.TransactionRecord {
	return &database.TransactionRecord{
		TransactionID: transaction.TransactionID(),
		AccountNumber: transaction.AccountNumber(),
		Type:          string(transaction.Type()),
		Amount:        transaction.Amount(),
		BalanceAfter:  transaction.BalanceAfter(),
		OccurredAt:    transaction.OccurredAt(),
	}
}

func transactionFromRecord(record *database.TransactionRecord) (*models.Transaction, error) {
	transaction, err := models.RestoreTransaction(
		record.TransactionID,
		record.AccountNumber,
		models.TransactionType(record.Type),
		record.Amount,
		record.BalanceAfter,
		record.OccurredAt.Local(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to restore transaction %s: %w", record.TransactionID, err)
	}
	return transaction, nil
}
