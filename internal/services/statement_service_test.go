package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"
	"bank-account-manager/internal/repositories/repository_mocks"
	"bank-account-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAccountRepo *repository_mocks.MockAccountRepositoryInterface
	mockLedger      *repository_mocks.MockTransactionRepositoryInterface
	auditLogger     *service_mocks.MockAuditLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         StatementServiceInterface
	account         *models.Account
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.mockLedger = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewStatementService(s.mockAccountRepo, s.mockLedger, s.auditLogger, s.metrics, slog.Default())

	customer, err := models.NewCustomer("CUS0", models.CustomerTypeRegular, "Alice", 30, "0123456789", "x")
	s.Require().NoError(err)
	s.account, err = models.OpenAccount("ACC000", models.AccountTypeChecking, customer, decimal.NewFromInt(325))
	s.Require().NoError(err)
}

func (s *StatementServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatementServiceTestSuite) transaction(id string, kind models.TransactionType, amount, after int64) *models.Transaction {
	txn, err := models.NewTransaction(id, "ACC000", kind, decimal.NewFromInt(amount), decimal.NewFromInt(after), time.Now())
	s.Require().NoError(err)
	return txn
}

func (s *StatementServiceTestSuite) TestGetStatement() {
	history := []*models.Transaction{
		s.transaction("TNX000", models.TransactionTypeDeposit, 500, 500),
		s.transaction("TNX001", models.TransactionTypeWithdrawal, 200, 300),
		s.transaction("TNX002", models.TransactionTypeDeposit, 25, 325),
	}
	s.mockAccountRepo.EXPECT().FindByNumber("ACC000").Return(s.account, nil)
	s.mockLedger.EXPECT().ByAccount("ACC000").Return(history, nil)
	s.auditLogger.EXPECT().LogStatementGenerated(gomock.Any(), "ACC000", 3)
	s.metrics.EXPECT().IncrementCounter("statement_generated", nil)

	statement, err := s.service.GetStatement(context.Background(), "ACC000")

	s.Require().NoError(err)
	s.Same(s.account, statement.Account)
	s.Equal(history, statement.Transactions)
	s.True(decimal.NewFromInt(525).Equal(statement.Summary.TotalDeposits))
	s.True(decimal.NewFromInt(200).Equal(statement.Summary.TotalWithdrawals))
	s.True(decimal.NewFromInt(325).Equal(statement.Summary.NetChange))
	s.Equal(3, statement.Summary.TransactionCount)
}

func (s *StatementServiceTestSuite) TestGetStatement_EmptyHistory() {
	s.mockAccountRepo.EXPECT().FindByNumber("ACC000").Return(s.account, nil)
	s.mockLedger.EXPECT().ByAccount("ACC000").Return(nil, nil)
	s.auditLogger.EXPECT().LogStatementGenerated(gomock.Any(), "ACC000", 0)
	s.metrics.EXPECT().IncrementCounter("statement_generated", nil)

	statement, err := s.service.GetStatement(context.Background(), "ACC000")

	s.Require().NoError(err)
	s.Empty(statement.Transactions)
	s.True(statement.Summary.NetChange.IsZero())
}

func (s *StatementServiceTestSuite) TestGetStatement_AccountNotFound() {
	s.mockAccountRepo.EXPECT().FindByNumber("ACC009").Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.GetStatement(context.Background(), "ACC009")

	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *StatementServiceTestSuite) TestGetStatement_LedgerFailure() {
	dbErr := errors.New("connection reset")
	s.mockAccountRepo.EXPECT().FindByNumber("ACC000").Return(s.account, nil)
	s.mockLedger.EXPECT().ByAccount("ACC000").Return(nil, dbErr)

	_, err := s.service.GetStatement(context.Background(), "ACC000")

	s.ErrorIs(err, dbErr)
	s.Contains(err.Error(), "failed to get transactions")
}
