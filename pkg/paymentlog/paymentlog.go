// Package paymentlog appends one diagnostic line per successful payment to a
// local text file. The log is never read back by this service and is not
// authoritative state; losing a line on crash is acceptable.
package paymentlog

import (
	"fmt"
	"os"
	"time"

	"github.com/dquezada/pasarela/pkg/constant"
	"github.com/dquezada/pasarela/pkg/helper"
	"github.com/dquezada/pasarela/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=paymentlog.go -destination=mock/paymentlog_mock.go -package=mock github.com/dquezada/pasarela/pkg/paymentlog Recorder

// Entry is one successful payment as reported by the provider.
type Entry struct {
	OrderID       string
	CheckoutID    string
	AmountInCents int64
	Currency      string
	Email         string
	CreatedAt     string
}

// Recorder records successful payments. Implementations may write
// asynchronously; callers must not rely on the line being durable when
// Record returns.
type Recorder interface {
	Record(entry Entry)
}

type FileRecorder struct {
	path   string
	logger logger.Interface
}

var _ Recorder = (*FileRecorder)(nil)

func NewFileRecorder(path string, l logger.Interface) *FileRecorder {
	return &FileRecorder{
		path:   path,
		logger: l,
	}
}

// Record appends the entry without blocking the caller. Ordering across
// concurrent deliveries is not guaranteed.
func (r *FileRecorder) Record(entry Entry) {
	go func() {
		if err := r.append(entry); err != nil {
			r.logger.Error("paymentlog - Record - append failed: %v", err)
		}
	}()
}

func (r *FileRecorder) append(entry Entry) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("paymentlog: open %s: %w", r.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s order_id=%s checkout_id=%s amount=Q%s currency=%s email=%s created_at=%s\n",
		time.Now().UTC().Format(constant.FullDateFormat),
		entry.OrderID,
		entry.CheckoutID,
		helper.FormatQuetzales(entry.AmountInCents),
		entry.Currency,
		entry.Email,
		entry.CreatedAt,
	)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("paymentlog: write %s: %w", r.path, err)
	}

	return nil
}
