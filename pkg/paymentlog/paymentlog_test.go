package paymentlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	log "github.com/dquezada/pasarela/pkg/logger/mock"
)

func TestFileRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "payments.log")
	recorder := NewFileRecorder(path, log.NewMockInterface(ctrl))

	recorder.Record(Entry{
		OrderID:       "1001",
		CheckoutID:    "ch_123",
		AmountInCents: 500,
		Currency:      "GTQ",
		Email:         "cliente@example.com",
		CreatedAt:     "2026-08-30T12:00:00Z",
	})

	// Record is fire-and-forget; wait for the line to land.
	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.Contains(string(data), "order_id=1001")
	}, 2*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimRight(string(data), "\n")
	assert.Contains(t, line, "order_id=1001")
	assert.Contains(t, line, "checkout_id=ch_123")
	assert.Contains(t, line, "amount=Q5.00")
	assert.Contains(t, line, "currency=GTQ")
	assert.Contains(t, line, "email=cliente@example.com")
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestFileRecorder_Record_appendsPerEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "payments.log")
	recorder := NewFileRecorder(path, log.NewMockInterface(ctrl))

	recorder.Record(Entry{OrderID: "1001", AmountInCents: 500})
	recorder.Record(Entry{OrderID: "1002", AmountInCents: 750})

	// Duplicate delivery of 1001 appends again, there is no idempotency guard.
	recorder.Record(Entry{OrderID: "1001", AmountInCents: 500})

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.Count(string(data), "\n") == 3
	}, 2*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "order_id=1001 "))
}
