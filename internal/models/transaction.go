package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the ledger event kind
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"

	// TransactionIDPrefix is prepended to the transaction sequence number
	TransactionIDPrefix = "TNX00"

	// TimestampLayout renders transaction times as dd-MM-yyyy HH:mm:ss
	TimestampLayout = "02-01-2006 15:04:05"
)

var ErrUnknownTransactionType = errors.New("unknown transaction type")

// Transaction is an immutable ledger record written after a successful
// deposit or withdrawal.
type Transaction struct {
	transactionID string
	accountNumber string
	kind          TransactionType
	amount        decimal.Decimal
	balanceAfter  decimal.Decimal
	occurredAt    time.Time
}

// NewTransaction builds a ledger record
func NewTransaction(transactionID, accountNumber string, kind TransactionType, amount, balanceAfter decimal.Decimal, occurredAt time.Time) (*Transaction, error) {
	if !IsValidTransactionType(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, kind)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.StringFixed(2))
	}

	return &Transaction{
		transactionID: transactionID,
		accountNumber: accountNumber,
		kind:          kind,
		amount:        amount,
		balanceAfter:  balanceAfter,
		occurredAt:    occurredAt,
	}, nil
}

// RestoreTransaction rebuilds a ledger record read back from storage. Stored
// rows go through the same checks as new ones.
func RestoreTransaction(transactionID, accountNumber string, kind TransactionType, amount, balanceAfter decimal.Decimal, occurredAt time.Time) (*Transaction, error) {
	return NewTransaction(transactionID, accountNumber, kind, amount, balanceAfter, occurredAt)
}

// FormatTransactionID renders a sequence number as a transaction id
func FormatTransactionID(seq int64) string {
	return fmt.Sprintf("%s%d", TransactionIDPrefix, seq)
}

func (t *Transaction) TransactionID() string {
	return t.transactionID
}

func (t *Transaction) AccountNumber() string {
	return t.accountNumber
}

func (t *Transaction) Type() TransactionType {
	return t.kind
}

func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t *Transaction) BalanceAfter() decimal.Decimal {
	return t.balanceAfter
}

func (t *Transaction) OccurredAt() time.Time {
	return t.occurredAt
}

// Timestamp returns the creation time formatted with TimestampLayout
func (t *Transaction) Timestamp() string {
	return t.occurredAt.Format(TimestampLayout)
}

func (t *Transaction) IsDeposit() bool {
	return t.kind == TransactionTypeDeposit
}

// SignedAmount is positive for deposits and negative for withdrawals
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDeposit() {
		return t.amount
	}
	return t.amount.Neg()
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s", t.transactionID, t.Timestamp(), t.kind,
		t.amount.StringFixed(2), t.balanceAfter.StringFixed(2))
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(kind TransactionType) bool {
	switch kind {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	default:
		return false
	}
}

// ParseTransactionType matches a type name case-insensitively
func ParseTransactionType(s string) (TransactionType, error) {
	switch {
	case strings.EqualFold(s, string(TransactionTypeDeposit)):
		return TransactionTypeDeposit, nil
	case strings.EqualFold(s, string(TransactionTypeWithdrawal)):
		return TransactionTypeWithdrawal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, s)
	}
}
