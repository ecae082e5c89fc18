package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/services"
	"bank-account-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	accounts     *service_mocks.MockAccountServiceInterface
	transactions *service_mocks.MockTransactionServiceInterface
	logs         *bytes.Buffer
	out          *bytes.Buffer
	app          func(input string) *App
}

func TestFailureTestSuite(t *testing.T) {
	suite.Run(t, new(FailureTestSuite))
}

func (s *FailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.logs = &bytes.Buffer{}
	s.out = &bytes.Buffer{}

	logger := slog.New(slog.NewTextHandler(s.logs, nil))
	svc := Services{
		Customers:    service_mocks.NewMockCustomerServiceInterface(s.ctrl),
		Accounts:     s.accounts,
		Transactions: s.transactions,
		Statements:   service_mocks.NewMockStatementServiceInterface(s.ctrl),
	}
	s.app = func(input string) *App {
		return NewApp(strings.NewReader(input), s.out, svc, 3, logger)
	}
}

func (s *FailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FailureTestSuite) ctx() context.Context {
	return services.WithCorrelationID(context.Background(), "session-7")
}

func (s *FailureTestSuite) TestStorageFailureIsHiddenAndLogged() {
	s.accounts.EXPECT().ListAccounts().Return(nil, errors.New("database is locked"))

	err := s.app("2\n\n6\n").Run(s.ctx())

	s.Require().NoError(err)
	s.Contains(s.out.String(), "[SYSTEM_002] A storage error occurred\n")
	s.NotContains(s.out.String(), "database is locked")
	s.Contains(s.logs.String(), "database is locked")
	s.Contains(s.logs.String(), "correlation_id=session-7")
}

func (s *FailureTestSuite) TestTotalBalanceFailure() {
	s.accounts.EXPECT().ListAccounts().Return(nil, nil)
	s.accounts.EXPECT().TotalBalance().Return(decimal.Zero, errors.New("disk I/O error"))

	err := s.app("2\n\n6\n").Run(s.ctx())

	s.Require().NoError(err)
	s.Contains(s.out.String(), "[SYSTEM_002]")
	s.NotContains(s.out.String(), "ACCOUNT LISTING")
}

func (s *FailureTestSuite) TestLookupFailure() {
	s.accounts.EXPECT().FindAccount("ACC001").Return(nil, errors.New("connection reset"))

	err := s.app("3\nacc001\n6\n").Run(s.ctx())

	s.Require().NoError(err)
	s.Contains(s.out.String(), "[SYSTEM_002]")
	s.NotContains(s.out.String(), "TRANSACTION CONFIRMATION")
}

func (s *FailureTestSuite) TestPanicReturnsToMenu() {
	s.accounts.EXPECT().ListAccounts().DoAndReturn(func() ([]*models.Account, error) {
		panic("registry corrupted")
	})

	err := s.app("2\n6\n").Run(s.ctx())

	s.Require().NoError(err)
	s.Contains(s.out.String(), "[SYSTEM_004] An unexpected error occurred")
	s.True(strings.HasSuffix(s.out.String(), "Goodbye!\n"))
	s.Contains(s.logs.String(), "Panic recovered")
	s.Contains(s.logs.String(), "registry corrupted")
}
