package repositories

import (
	"time"

	"bank-account-manager/internal/models"

	"github.com/shopspring/decimal"
)

func (s *RegistrySuite) newTransaction(id, accountNumber string, amount, after int64) *models.Transaction {
	txn, err := models.NewTransaction(id, accountNumber, models.TransactionTypeDeposit,
		decimal.NewFromInt(amount), decimal.NewFromInt(after), time.Now())
	s.Require().NoError(err)
	return txn
}

func (s *RegistrySuite) storedBalance(accountNumber string) decimal.Decimal {
	found, err := s.accounts.FindByNumber(accountNumber)
	s.Require().NoError(err)
	return found.Balance()
}

func (s *RegistrySuite) TestUnitOfWork_CommitsBoth() {
	customer := s.addCustomer(0, models.CustomerTypeRegular)
	account := s.addAccount(0, models.AccountTypeChecking, customer, 100)

	updated := account.Clone()
	s.Require().NoError(updated.Deposit(decimal.NewFromInt(50)))

	s.NoError(s.unitOfWork.CommitTransaction(updated, s.newTransaction("TNX000", "ACC000", 50, 150)))

	s.True(decimal.NewFromInt(150).Equal(s.storedBalance("ACC000")))
	history, err := s.transactions.ByAccount("ACC000")
	s.NoError(err)
	s.Len(history, 1)
}

// A duplicate ledger id aborts the commit and the balance update with it
func (s *RegistrySuite) TestUnitOfWork_AppendFailureKeepsBalance() {
	customer := s.addCustomer(0, models.CustomerTypeRegular)
	account := s.addAccount(0, models.AccountTypeChecking, customer, 100)
	s.Require().NoError(s.transactions.Append(s.newTransaction("TNX000", "ACC0099", 1, 1)))

	updated := account.Clone()
	s.Require().NoError(updated.Deposit(decimal.NewFromInt(50)))

	err := s.unitOfWork.CommitTransaction(updated, s.newTransaction("TNX000", "ACC000", 50, 150))

	s.ErrorIs(err, ErrTransactionIDExists)
	s.True(decimal.NewFromInt(100).Equal(s.storedBalance("ACC000")), "stored balance %s", s.storedBalance("ACC000"))

	total, err := s.accounts.TotalBalance()
	s.NoError(err)
	s.True(decimal.NewFromInt(100).Equal(total), "total %s", total)

	history, err := s.transactions.ByAccount("ACC000")
	s.NoError(err)
	s.Empty(history)
}

func (s *RegistrySuite) TestUnitOfWork_UnknownAccountWritesNothing() {
	customer := s.addCustomer(0, models.CustomerTypeRegular)
	stranger, err := models.OpenAccount("ACC007", models.AccountTypeSavings, customer, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	err = s.unitOfWork.CommitTransaction(stranger, s.newTransaction("TNX000", "ACC007", 50, 1050))

	s.ErrorIs(err, ErrAccountNotFound)
	count, err := s.transactions.Count()
	s.NoError(err)
	s.Zero(count)
}

func (s *RegistrySuite) TestUnitOfWork_NilArguments() {
	customer := s.addCustomer(0, models.CustomerTypeRegular)
	account := s.addAccount(0, models.AccountTypeChecking, customer, 100)

	s.ErrorIs(s.unitOfWork.CommitTransaction(nil, s.newTransaction("TNX000", "ACC000", 1, 1)), ErrNilAccount)
	s.ErrorIs(s.unitOfWork.CommitTransaction(account, nil), ErrNilTransaction)
}
