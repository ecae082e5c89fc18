package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CustomerType identifies the customer tier
type CustomerType string

const (
	CustomerTypeRegular CustomerType = "regular"
	CustomerTypePremium CustomerType = "premium"

	// CustomerIDPrefix is prepended to the customer sequence number
	CustomerIDPrefix = "CUS"
)

// PremiumMinimumBalance is the balance a premium customer is expected to keep
var PremiumMinimumBalance = decimal.NewFromInt(10000)

var ErrInvalidCustomerType = errors.New("invalid customer type")

// Customer is an account holder. The tier is fixed at creation.
type Customer struct {
	customerID string
	kind       CustomerType
	name       string
	age        int
	contact    string
	address    string
}

// NewCustomer builds a customer from already validated input
func NewCustomer(customerID string, kind CustomerType, name string, age int, contact, address string) (*Customer, error) {
	if !IsValidCustomerType(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCustomerType, kind)
	}

	return &Customer{
		customerID: customerID,
		kind:       kind,
		name:       name,
		age:        age,
		contact:    contact,
		address:    address,
	}, nil
}

// FormatCustomerID renders a sequence number as a customer id
func FormatCustomerID(seq int64) string {
	return fmt.Sprintf("%s%d", CustomerIDPrefix, seq)
}

func (c *Customer) CustomerID() string {
	return c.customerID
}

func (c *Customer) Type() CustomerType {
	return c.kind
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Age() int {
	return c.age
}

func (c *Customer) Contact() string {
	return c.contact
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) SetName(name string) {
	c.name = name
}

func (c *Customer) SetAge(age int) {
	c.age = age
}

func (c *Customer) SetContact(contact string) {
	c.contact = contact
}

func (c *Customer) SetAddress(address string) {
	c.address = address
}

// IsPremium returns true for premium tier customers
func (c *Customer) IsPremium() bool {
	return c.kind == CustomerTypePremium
}

// MinimumBalance is informational; only premium customers carry one
func (c *Customer) MinimumBalance() decimal.Decimal {
	if c.IsPremium() {
		return PremiumMinimumBalance
	}
	return decimal.Zero
}

// HasWaivedFees reports whether monthly fees are waived for this customer
func (c *Customer) HasWaivedFees() bool {
	return c.IsPremium()
}

// DisplayType returns the tier as shown to operators
func (c *Customer) DisplayType() string {
	if c.IsPremium() {
		return "Premium"
	}
	return "Regular"
}

func (c *Customer) String() string {
	return c.name
}

// IsValidCustomerType checks if the customer type is valid
func IsValidCustomerType(kind CustomerType) bool {
	switch kind {
	case CustomerTypeRegular, CustomerTypePremium:
		return true
	default:
		return false
	}
}
