package repositories

import (
	"errors"
	"fmt"

	"bank-account-manager/internal/database"
	"bank-account-manager/internal/models"

	"gorm.io/gorm"
)

// customerRepository stores customers through gorm
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new gorm-backed customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{
		db: db,
	}
}

// Add inserts a new customer row
func (r *customerRepository) Add(customer *models.Customer) error {
	if customer == nil {
		return ErrNilCustomer
	}

	if err := r.db.Create(toCustomerRecord(customer)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrCustomerExists, customer.CustomerID())
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// FindByID retrieves a customer by its CUS id
func (r *customerRepository) FindByID(customerID string) (*models.Customer, error) {
	var record database.CustomerRecord
	if err := r.db.Where("customer_id = ?", customerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customerFromRecord(&record)
}

// All retrieves every customer in insertion order
func (r *customerRepository) All() ([]*models.Customer, error) {
	var records []database.CustomerRecord
	if err := r.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*models.Customer, 0, len(records))
	for i := range records {
		customer, err := customerFromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// Count returns the number of stored customers
func (r *customerRepository) Count() (int, error) {
	var count int64
	if err := r.db.Model(&database.CustomerRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return int(count), nil
}
