package messaging

import (
	"context"
	"time"
)

// Message is one delivery from the decision queue. Receipt identifies the
// delivery for acknowledgement; the same body may be delivered again if the
// receipt is never deleted (at-least-once).
type Message struct {
	ID      string
	Receipt string
	Body    []byte
}

// Publisher sends a JSON-encoded payload to a named channel and returns the
// transport's message identifier.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) (string, error)
}

// Source receives up to max pending messages, waiting at most wait, and
// deletes processed messages by receipt handle.
type Source interface {
	Receive(ctx context.Context, max int, wait time.Duration) ([]Message, error)
	Delete(ctx context.Context, receipt string) error
}

// Channels names the destinations this service publishes to.
type Channels struct {
	CreditAnalysis     string
	StatusNotification string
	LoanApproved       string
}

// LoanSender is the typed publishing gateway consumed by the usecases.
type LoanSender interface {
	SendCreditAnalysis(ctx context.Context, msg CreditAnalysis) (string, error)
	SendStatusUpdateNotification(ctx context.Context, ev StatusUpdateEvent) (string, error)
	SendStatusNotification(ctx context.Context, n Notification) (string, error)
	SendApprovedEvent(ctx context.Context, ev ApprovedEvent) (string, error)
}

// Sender routes each payload type to its configured channel.
type Sender struct {
	pub Publisher
	ch  Channels
}

func NewSender(pub Publisher, ch Channels) *Sender { return &Sender{pub: pub, ch: ch} }

func (s *Sender) SendCreditAnalysis(ctx context.Context, msg CreditAnalysis) (string, error) {
	return s.pub.Publish(ctx, s.ch.CreditAnalysis, msg)
}

func (s *Sender) SendStatusUpdateNotification(ctx context.Context, ev StatusUpdateEvent) (string, error) {
	return s.pub.Publish(ctx, s.ch.StatusNotification, ev)
}

func (s *Sender) SendStatusNotification(ctx context.Context, n Notification) (string, error) {
	return s.pub.Publish(ctx, s.ch.StatusNotification, n)
}

func (s *Sender) SendApprovedEvent(ctx context.Context, ev ApprovedEvent) (string, error) {
	return s.pub.Publish(ctx, s.ch.LoanApproved, ev)
}
