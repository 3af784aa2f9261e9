package sendermock

import (
	"context"
	"sync"

	"loanflow/internal/domain/messaging"
)

var _ messaging.LoanSender = (*Sender)(nil)

// Sender records every published payload in order so tests can assert on
// counts and sequencing. Individual Fn hooks override the default recording
// behavior per method.
type Sender struct {
	mu   sync.Mutex
	sent []Sent

	SendCreditAnalysisFn           func(ctx context.Context, msg messaging.CreditAnalysis) (string, error)
	SendStatusUpdateNotificationFn func(ctx context.Context, ev messaging.StatusUpdateEvent) (string, error)
	SendStatusNotificationFn       func(ctx context.Context, n messaging.Notification) (string, error)
	SendApprovedEventFn            func(ctx context.Context, ev messaging.ApprovedEvent) (string, error)
}

// Sent is one recorded publish. Kind is the method name suffix.
type Sent struct {
	Kind    string
	Payload any
}

func (m *Sender) record(kind string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, Sent{Kind: kind, Payload: payload})
}

// All returns a copy of everything recorded, in publish order.
func (m *Sender) All() []Sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Sent, len(m.sent))
	copy(out, m.sent)
	return out
}

// OfKind returns the recorded publishes of one kind.
func (m *Sender) OfKind(kind string) []Sent {
	var out []Sent
	for _, s := range m.All() {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func (m *Sender) SendCreditAnalysis(ctx context.Context, msg messaging.CreditAnalysis) (string, error) {
	if m.SendCreditAnalysisFn != nil {
		return m.SendCreditAnalysisFn(ctx, msg)
	}
	m.record("CreditAnalysis", msg)
	return "msg-1", nil
}

func (m *Sender) SendStatusUpdateNotification(ctx context.Context, ev messaging.StatusUpdateEvent) (string, error) {
	if m.SendStatusUpdateNotificationFn != nil {
		return m.SendStatusUpdateNotificationFn(ctx, ev)
	}
	m.record("StatusUpdateNotification", ev)
	return "msg-1", nil
}

func (m *Sender) SendStatusNotification(ctx context.Context, n messaging.Notification) (string, error) {
	if m.SendStatusNotificationFn != nil {
		return m.SendStatusNotificationFn(ctx, n)
	}
	m.record("StatusNotification", n)
	return "msg-1", nil
}

func (m *Sender) SendApprovedEvent(ctx context.Context, ev messaging.ApprovedEvent) (string, error) {
	if m.SendApprovedEventFn != nil {
		return m.SendApprovedEventFn(ctx, ev)
	}
	m.record("ApprovedEvent", ev)
	return "msg-1", nil
}
