package models

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountPropertyTestSuite drives accounts with random amounts and checks
// the balance rules hold after every step
type AccountPropertyTestSuite struct {
	suite.Suite
}

func TestAccountPropertySuite(t *testing.T) {
	suite.Run(t, new(AccountPropertyTestSuite))
}

const propertyIterations = 200

func (s *AccountPropertyTestSuite) randomAmount() decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Float64Range(0.01, 2500)).Round(2)
}

func (s *AccountPropertyTestSuite) openAccount(kind AccountType, balance decimal.Decimal) *Account {
	customer, err := NewCustomer("CUS0", CustomerTypeRegular, gofakeit.FirstName(), gofakeit.IntRange(18, 90), gofakeit.Numerify("##########"), gofakeit.Street())
	s.Require().NoError(err)

	account, err := OpenAccount("ACC000", kind, customer, balance)
	s.Require().NoError(err)
	return account
}

func (s *AccountPropertyTestSuite) TestDepositAddsExactly() {
	account := s.openAccount(AccountTypeChecking, decimal.Zero)
	expected := decimal.Zero

	for i := 0; i < propertyIterations; i++ {
		amount := s.randomAmount()
		s.Require().NoError(account.Deposit(amount))
		expected = expected.Add(amount)
		s.True(expected.Equal(account.Balance()), "iteration %d: want %s got %s", i, expected, account.Balance())
	}
}

func (s *AccountPropertyTestSuite) TestSavingsNeverGoesNegative() {
	account := s.openAccount(AccountTypeSavings, decimal.NewFromInt(1000))

	for i := 0; i < propertyIterations; i++ {
		before := account.Balance()
		amount := s.randomAmount()

		var err error
		if gofakeit.Bool() {
			err = account.Deposit(amount)
		} else {
			err = account.Withdraw(amount)
		}

		if err != nil {
			s.True(errors.Is(err, ErrNegativeBalance), "iteration %d: %v", i, err)
			s.True(before.Equal(account.Balance()), "rejected withdrawal changed the balance")
		}
		s.False(account.Balance().IsNegative(), "iteration %d: balance %s", i, account.Balance())
	}
}

func (s *AccountPropertyTestSuite) TestCheckingStaysWithinLiteralOverdraftRule() {
	account := s.openAccount(AccountTypeChecking, decimal.Zero)

	for i := 0; i < propertyIterations; i++ {
		before := account.Balance()
		amount := s.randomAmount()

		err := account.Withdraw(amount)

		exceeds := before.Sub(amount).Abs().GreaterThan(CheckingOverdraftLimit)
		if exceeds {
			s.ErrorIs(err, ErrOverdraftLimitExceeded, "iteration %d", i)
			s.True(before.Equal(account.Balance()))
		} else {
			s.NoError(err, "iteration %d", i)
			s.True(before.Sub(amount).Equal(account.Balance()))
		}

		// Keep the walk near zero so both outcomes keep occurring.
		if account.Balance().LessThan(decimal.NewFromInt(-500)) {
			s.Require().NoError(account.Deposit(decimal.NewFromInt(1000)))
		}
	}
}

func (s *AccountPropertyTestSuite) TestTransactionsKeepWhatTheyWereGiven() {
	occurredAt := gofakeit.DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < propertyIterations; i++ {
		kind := TransactionTypeDeposit
		if gofakeit.Bool() {
			kind = TransactionTypeWithdrawal
		}
		amount := s.randomAmount()
		balance := decimal.NewFromFloat(gofakeit.Float64Range(-1000, 50000)).Round(2)

		txn, err := NewTransaction(FormatTransactionID(int64(i)), "ACC000", kind, amount, balance, occurredAt)

		s.Require().NoError(err)
		s.Equal(kind, txn.Type())
		s.True(amount.Equal(txn.Amount()))
		s.True(balance.Equal(txn.BalanceAfter()))
		s.Equal(occurredAt.Format(TimestampLayout), txn.Timestamp())
		s.Equal(kind == TransactionTypeDeposit, txn.SignedAmount().IsPositive())
	}
}
