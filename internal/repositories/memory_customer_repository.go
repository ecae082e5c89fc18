package repositories

import (
	"fmt"

	"bank-account-manager/internal/models"
)

// memoryCustomerRepository keeps customers in registration order
type memoryCustomerRepository struct {
	customers []*models.Customer
}

// NewMemoryCustomerRepository creates an empty in-process customer registry
func NewMemoryCustomerRepository() CustomerRepositoryInterface {
	return &memoryCustomerRepository{}
}

func (r *memoryCustomerRepository) Add(customer *models.Customer) error {
	if customer == nil {
		return ErrNilCustomer
	}
	if _, err := r.FindByID(customer.CustomerID()); err == nil {
		return fmt.Errorf("%w: %s", ErrCustomerExists, customer.CustomerID())
	}

	r.customers = append(r.customers, customer)
	return nil
}

func (r *memoryCustomerRepository) FindByID(customerID string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.CustomerID() == customerID {
			return customer, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// All returns a copy of the registry so callers cannot reorder it
func (r *memoryCustomerRepository) All() ([]*models.Customer, error) {
	customers := make([]*models.Customer, len(r.customers))
	copy(customers, r.customers)
	return customers, nil
}

func (r *memoryCustomerRepository) Count() (int, error) {
	return len(r.customers), nil
}
