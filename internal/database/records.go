package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRecord is the stored form of models.Customer
type CustomerRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CustomerID string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Age        int       `gorm:"not null"`
	Contact    string    `gorm:"type:varchar(10);not null"`
	Address    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for CustomerRecord
func (CustomerRecord) TableName() string {
	return "customers"
}

// AccountRecord is the stored form of models.Account
type AccountRecord struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	AccountNumber string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	AccountType   string          `gorm:"type:varchar(20);not null"`
	CustomerID    string          `gorm:"type:varchar(20);not null;index"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Associations
	Customer CustomerRecord `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

// TableName returns the table name for AccountRecord
func (AccountRecord) TableName() string {
	return "accounts"
}

// TransactionRecord is the stored form of models.Transaction
type TransactionRecord struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	TransactionID string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	AccountNumber string          `gorm:"type:varchar(20);not null;index"`
	Type          string          `gorm:"type:varchar(20);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OccurredAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for TransactionRecord
func (TransactionRecord) TableName() string {
	return "transactions"
}
