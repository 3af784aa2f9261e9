package sourcemock

import (
	"context"
	"sync"
	"time"

	"loanflow/internal/domain/messaging"
)

var _ messaging.Source = (*Source)(nil)

// Source is a function-backed mock that satisfies messaging.Source and
// records which receipts were deleted.
type Source struct {
	mu      sync.Mutex
	deleted []string

	ReceiveFn func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error)
	DeleteFn  func(ctx context.Context, receipt string) error
}

func (m *Source) Receive(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
	if m.ReceiveFn != nil {
		return m.ReceiveFn(ctx, max, wait)
	}
	return nil, nil
}

func (m *Source) Delete(ctx context.Context, receipt string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, receipt)
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, receipt)
	}
	return nil
}

// Deleted returns the receipts acknowledged so far.
func (m *Source) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
