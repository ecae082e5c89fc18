package repositories

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerExists      = errors.New("customer id already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrTransactionIDExists = errors.New("transaction id already exists")
	ErrNilCustomer         = errors.New("customer is nil")
	ErrNilAccount          = errors.New("account is nil")
	ErrNilTransaction      = errors.New("transaction is nil")
)
