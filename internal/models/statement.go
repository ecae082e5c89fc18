package models

import (
	"github.com/shopspring/decimal"
)

// AccountStatement is the transaction history of one account with its totals
type AccountStatement struct {
	Account      *Account
	Transactions []*Transaction
	Summary      StatementSummary
}

// StatementSummary provides aggregate information for the statement
type StatementSummary struct {
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	NetChange        decimal.Decimal
	TransactionCount int
	DepositCount     int
	WithdrawalCount  int
}

// Summarize totals a list of transactions
func Summarize(transactions []*Transaction) StatementSummary {
	summary := StatementSummary{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TransactionCount: len(transactions),
	}

	for _, t := range transactions {
		switch t.Type() {
		case TransactionTypeDeposit:
			summary.TotalDeposits = summary.TotalDeposits.Add(t.Amount())
			summary.DepositCount++
		case TransactionTypeWithdrawal:
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(t.Amount())
			summary.WithdrawalCount++
		}
	}

	summary.NetChange = summary.TotalDeposits.Sub(summary.TotalWithdrawals)
	return summary
}
