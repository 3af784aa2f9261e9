// Package decision applies underwriting verdicts and advisor commands to a
// loan: it persists the status change, emits the approved event when the
// verdict says so, and always requests a notification.
package decision

import (
	"context"
	"time"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
)

type Processor struct {
	updater *Updater
	sender  messaging.LoanSender
	logger  logging.Logger
	now     func() time.Time
}

func NewProcessor(up *Updater, sender messaging.LoanSender, log logging.Logger) *Processor {
	return &Processor{updater: up, sender: sender, logger: log, now: time.Now}
}

// WithClock overrides the timestamp source. For tests.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	p.now = now
	return p
}

// ProcessAutomatic applies an underwriting verdict. The approved event is
// attempted before the notification; a failure in either leaves the message
// undeleted so it is redelivered.
func (p *Processor) ProcessAutomatic(ctx context.Context, ev messaging.StatusUpdateEvent) (*Decision, error) {
	p.logger.Info("processing automatic analysis result for loan %s", ev.LoanID)

	d := Decision{LoanID: ev.LoanID, Status: ev.Status, Automatic: true}
	updated, err := p.updater.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := p.emitApprovedEvent(ctx, updated, d); err != nil {
		return nil, err
	}
	if _, err := p.sender.SendStatusUpdateNotification(ctx, ev); err != nil {
		return nil, err
	}
	return &d, nil
}

// ProcessManual applies an advisor's decision and sends the simple
// notification instead of the full verdict context.
func (p *Processor) ProcessManual(ctx context.Context, cmd messaging.ManualDecision) (*Decision, error) {
	p.logger.Info("processing manual update for loan %s", cmd.LoanID)

	d := Decision{LoanID: cmd.LoanID, Status: cmd.Status, Automatic: false}
	updated, err := p.updater.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := p.emitApprovedEvent(ctx, updated, d); err != nil {
		return nil, err
	}
	n := messaging.Notification{
		LoanID:              updated.LoanID,
		Status:              d.Status,
		Email:               updated.Email,
		AutomaticValidation: false,
	}
	if _, err := p.sender.SendStatusNotification(ctx, n); err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *Processor) emitApprovedEvent(ctx context.Context, updated *loan.Loan, d Decision) error {
	if !loanstatus.IsApproved(d.Status) {
		p.logger.Trace("loan %s not approved, skipping approved event", updated.LoanID)
		return nil
	}
	ev := messaging.ApprovedEvent{
		LoanID:         updated.LoanID,
		Status:         d.Status,
		AmountApproved: updated.Amount,
		ApprovedAt:     p.now().UTC().Format(time.RFC3339),
	}
	if _, err := p.sender.SendApprovedEvent(ctx, ev); err != nil {
		return err
	}
	p.logger.Info("approved event sent for loan %s", updated.LoanID)
	return nil
}
