package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType identifies the account variant
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"

	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusClosed    = "closed"

	// AccountNumberPrefix is prepended to the account sequence number
	AccountNumberPrefix = "ACC00"
)

var (
	SavingsInterestRate    = decimal.RequireFromString("0.035")
	SavingsMinimumBalance  = decimal.NewFromInt(500)
	CheckingOverdraftLimit = decimal.NewFromInt(1000)
	CheckingMonthlyFee     = decimal.NewFromInt(10)
)

var (
	ErrInvalidAccountType     = errors.New("invalid account type")
	ErrCustomerRequired       = errors.New("account requires a customer")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrNegativeBalance        = errors.New("withdrawal would make the balance negative")
	ErrOverdraftLimitExceeded = errors.New("withdrawal exceeds the overdraft limit")
)

// Account is a bank account of one of the two variants. The variant is
// chosen by OpenAccount and never changes; the payload fields that do not
// apply to the variant stay zero.
type Account struct {
	accountNumber string
	kind          AccountType
	customer      *Customer
	balance       decimal.Decimal
	status        string

	// savings
	interestRate   decimal.Decimal
	minimumBalance decimal.Decimal

	// checking
	overdraftLimit decimal.Decimal
	monthlyFee     decimal.Decimal
}

// OpenAccount creates an active account holding the initial balance
func OpenAccount(accountNumber string, kind AccountType, customer *Customer, initialBalance decimal.Decimal) (*Account, error) {
	return RestoreAccount(accountNumber, kind, customer, initialBalance, AccountStatusActive)
}

// RestoreAccount rebuilds an account from stored state
func RestoreAccount(accountNumber string, kind AccountType, customer *Customer, balance decimal.Decimal, status string) (*Account, error) {
	if customer == nil {
		return nil, ErrCustomerRequired
	}

	a := &Account{
		accountNumber: accountNumber,
		kind:          kind,
		customer:      customer,
		balance:       balance,
		status:        status,
	}

	switch kind {
	case AccountTypeSavings:
		a.interestRate = SavingsInterestRate
		a.minimumBalance = SavingsMinimumBalance
	case AccountTypeChecking:
		a.overdraftLimit = CheckingOverdraftLimit
		a.monthlyFee = CheckingMonthlyFee
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountType, kind)
	}

	return a, nil
}

// Clone returns an independent copy that shares the customer
func (a *Account) Clone() *Account {
	clone := *a
	return &clone
}

// FormatAccountNumber renders a sequence number as an account number
func FormatAccountNumber(seq int64) string {
	return fmt.Sprintf("%s%d", AccountNumberPrefix, seq)
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Type() AccountType {
	return a.kind
}

// AccountType returns the display name of the variant
func (a *Account) AccountType() string {
	return string(a.kind)
}

func (a *Account) Customer() *Customer {
	return a.customer
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Status() string {
	return a.status
}

// SetStatus records a status; no behaviour depends on it
func (a *Account) SetStatus(status string) {
	a.status = status
}

func (a *Account) IsActive() bool {
	return a.status == AccountStatusActive
}

func (a *Account) IsSavings() bool {
	return a.kind == AccountTypeSavings
}

func (a *Account) IsChecking() bool {
	return a.kind == AccountTypeChecking
}

func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// MinimumBalance is the business floor for savings withdrawals, zero for checking
func (a *Account) MinimumBalance() decimal.Decimal {
	return a.minimumBalance
}

func (a *Account) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

func (a *Account) MonthlyFee() decimal.Decimal {
	return a.monthlyFee
}

// Deposit credits the account
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit of %s", ErrInvalidAmount, amount.StringFixed(2))
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the account after applying the variant's withdrawal rule
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal of %s", ErrInvalidAmount, amount.StringFixed(2))
	}

	if err := a.checkWithdrawal(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) checkWithdrawal(amount decimal.Decimal) error {
	projected := a.balance.Sub(amount)

	switch a.kind {
	case AccountTypeSavings:
		if projected.IsNegative() {
			return fmt.Errorf("%w: balance %s, requested %s",
				ErrNegativeBalance, a.balance.StringFixed(2), amount.StringFixed(2))
		}
	case AccountTypeChecking:
		// The limit is applied to the magnitude of the projected balance.
		if projected.Abs().GreaterThan(a.overdraftLimit) {
			return fmt.Errorf("%w: projected balance %s, limit %s",
				ErrOverdraftLimitExceeded, projected.StringFixed(2), a.overdraftLimit.StringFixed(2))
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAccountType, a.kind)
	}

	return nil
}

// ApplyTransaction routes the amount to Deposit or Withdraw
func (a *Account) ApplyTransaction(amount decimal.Decimal, transactionType TransactionType) error {
	switch transactionType {
	case TransactionTypeDeposit:
		return a.Deposit(amount)
	case TransactionTypeWithdrawal:
		return a.Withdraw(amount)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransactionType, transactionType)
	}
}

// CalculateInterest returns the simple interest on the current balance.
// It is informational and never credited.
func (a *Account) CalculateInterest() decimal.Decimal {
	return a.balance.Mul(a.interestRate)
}

// ApplyMonthlyFee reports the fee that a monthly run would charge. The
// balance is left untouched; fees are never debited automatically.
func (a *Account) ApplyMonthlyFee() decimal.Decimal {
	if !a.IsChecking() || a.customer.HasWaivedFees() {
		return decimal.Zero
	}
	return a.monthlyFee
}

// SpecificDetails summarises the variant's terms
func (a *Account) SpecificDetails() string {
	switch a.kind {
	case AccountTypeSavings:
		return fmt.Sprintf("Interest Rate: %s%% Min Balance: $%s",
			a.interestRate.Mul(decimal.NewFromInt(100)).StringFixed(1), a.minimumBalance.StringFixed(2))
	case AccountTypeChecking:
		details := fmt.Sprintf("Overdraft Limit: $%s Monthly Fee: $%s",
			a.overdraftLimit.StringFixed(2), a.monthlyFee.StringFixed(2))
		if a.customer.HasWaivedFees() {
			details += " (waived)"
		}
		return details
	default:
		return ""
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("%s %s %s $%s", a.accountNumber, a.customer, a.kind, a.balance.StringFixed(2))
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(kind AccountType) bool {
	switch kind {
	case AccountTypeSavings, AccountTypeChecking:
		return true
	default:
		return false
	}
}
