package services

import (
	"context"
	"fmt"
	"log/slog"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"
)

var ErrCustomerNotFound = repositories.ErrCustomerNotFound

// customerService implements CustomerServiceInterface
type customerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	sequence     *Sequence
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCustomerService creates a customer factory with its own id sequence
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CustomerServiceInterface {
	return &customerService{
		customerRepo: customerRepo,
		sequence:     NewSequence(),
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateCustomer assigns the next CUS id and registers the customer. The
// personal fields are stored as given; callers validate their shape.
func (s *customerService) CreateCustomer(ctx context.Context, kind models.CustomerType, name string, age int, contact, address string) (*models.Customer, error) {
	if !models.IsValidCustomerType(kind) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidCustomerType, kind)
	}

	customer, err := models.NewCustomer(models.FormatCustomerID(s.sequence.Next()), kind, name, age, contact, address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Add(customer); err != nil {
		s.logger.ErrorContext(ctx, "failed to register customer",
			"error", err,
			"customer_id", customer.CustomerID(),
		)
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	s.auditLogger.LogCustomerCreated(ctx, customer.CustomerID(), customer.Type())
	s.metrics.IncrementCounter("customer_created", map[string]string{
		"customer_type": string(customer.Type()),
	})

	return customer, nil
}

func (s *customerService) GetCustomer(customerID string) (*models.Customer, error) {
	return s.customerRepo.FindByID(customerID)
}

func (s *customerService) ListCustomers() ([]*models.Customer, error) {
	return s.customerRepo.All()
}

func (s *customerService) CountCustomers() (int, error) {
	return s.customerRepo.Count()
}
