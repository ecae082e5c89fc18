package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"bank-account-manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingAuditLogger() (AuditLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewAuditLogger(logger), &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestAuditLogger_TransactionProcessed(t *testing.T) {
	auditLogger, buf := newCapturingAuditLogger()
	ctx := WithCorrelationID(context.Background(), "session-1")

	auditLogger.LogTransactionProcessed(ctx, "TNX003", "ACC0012", models.TransactionTypeWithdrawal, "600.00", 2)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "transaction processed", entry["msg"])
	assert.Equal(t, "transaction_processed", entry["event_type"])
	assert.Equal(t, "TNX003", entry["transaction_id"])
	assert.Equal(t, "****0012", entry["account_number"])
	assert.Equal(t, "Withdrawal", entry["transaction_type"])
	assert.Equal(t, "600.00", entry["amount"])
	assert.Equal(t, "session-1", entry["correlation_id"])
}

func TestAuditLogger_TransactionRejectedIsWarning(t *testing.T) {
	auditLogger, buf := newCapturingAuditLogger()

	auditLogger.LogTransactionRejected(context.Background(), "ACC001", models.TransactionTypeWithdrawal, "550.00", "withdrawal would breach the minimum balance")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "transaction_rejected", entry["event_type"])
	assert.Equal(t, "withdrawal would breach the minimum balance", entry["reason"])
	assert.Equal(t, "", entry["correlation_id"])
}

func TestAuditLogger_CustomerCreatedOmitsPersonalData(t *testing.T) {
	auditLogger, buf := newCapturingAuditLogger()

	auditLogger.LogCustomerCreated(context.Background(), "CUS4", models.CustomerTypePremium)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "customer_created", entry["event_type"])
	assert.Equal(t, "CUS4", entry["customer_id"])
	assert.Equal(t, "premium", entry["customer_type"])
	assert.NotContains(t, entry, "name")
	assert.NotContains(t, entry, "contact")
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "****", maskAccountNumber("ACC"))
	assert.Equal(t, "****C000", maskAccountNumber("ACC000"))
	assert.Equal(t, "****0123", maskAccountNumber("ACC00123"))
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "", CorrelationID(context.Background()))
	assert.Equal(t, "", CorrelationID(nil))
	assert.Equal(t, "abc", CorrelationID(WithCorrelationID(context.Background(), "abc")))
}

func TestSequence(t *testing.T) {
	seq := NewSequence()

	assert.Equal(t, int64(0), seq.Peek())
	assert.Equal(t, int64(0), seq.Next())
	assert.Equal(t, int64(1), seq.Next())
	assert.Equal(t, int64(2), seq.Peek())
	assert.Equal(t, int64(2), seq.Next())
}
