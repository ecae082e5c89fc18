package database

import (
	"errors"
	"testing"

	"bank-account-manager/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNew_InMemory(t *testing.T) {
	db, err := New(&config.StorageConfig{Driver: config.StorageDriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())

	for _, table := range []string{"customers", "accounts", "transactions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestSetupTestDB_RoundTripsDecimals(t *testing.T) {
	db := SetupTestDB(t)

	customer := &CustomerRecord{CustomerID: "CUS0", Type: "regular", Name: "Alice", Age: 30, Contact: "0123456789", Address: "1 Main Street"}
	require.NoError(t, db.Create(customer).Error)

	account := &AccountRecord{AccountNumber: "ACC000", AccountType: "Savings", CustomerID: "CUS0", Balance: decimal.RequireFromString("1250.75"), Status: "active"}
	require.NoError(t, db.Create(account).Error)

	var found AccountRecord
	require.NoError(t, db.Preload("Customer").Where("account_number = ?", "ACC000").First(&found).Error)

	assert.True(t, decimal.RequireFromString("1250.75").Equal(found.Balance), "balance %s", found.Balance)
	assert.Equal(t, "Alice", found.Customer.Name)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&AccountRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWrap_PingFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	_, err = wrap(gormDB, &config.StorageConfig{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
	assert.NoError(t, mock.ExpectationsWereMet())
}
