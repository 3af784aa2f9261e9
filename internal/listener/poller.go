// Package listener runs the decision-ingestion loop: it long-polls the
// decision queue, decodes each message by its automaticValidation
// discriminator, feeds it to the decision processor and acknowledges only
// what was processed successfully (at-least-once delivery).
package listener

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/usecase/decision"
)

const (
	defaultBatchSize    = 10
	defaultReceiveWait  = 20 * time.Second
	defaultPollDelay    = 1 * time.Second
	defaultBackoffDelay = 5 * time.Second
)

type Poller struct {
	source    messaging.Source
	processor *decision.Processor
	logger    logging.Logger
	metrics   *Metrics

	batchSize    int
	receiveWait  time.Duration
	pollDelay    time.Duration
	backoffDelay time.Duration

	// sleep is injectable so tests do not wait on real timers.
	sleep func(ctx context.Context, d time.Duration)
}

type Option func(*Poller)

func WithBatchSize(n int) Option { return func(p *Poller) { p.batchSize = n } }

func WithDelays(receiveWait, pollDelay, backoff time.Duration) Option {
	return func(p *Poller) {
		p.receiveWait = receiveWait
		p.pollDelay = pollDelay
		p.backoffDelay = backoff
	}
}

func WithSleep(fn func(ctx context.Context, d time.Duration)) Option {
	return func(p *Poller) { p.sleep = fn }
}

func WithMetrics(m *Metrics) Option { return func(p *Poller) { p.metrics = m } }

func NewPoller(src messaging.Source, proc *decision.Processor, log logging.Logger, opts ...Option) *Poller {
	p := &Poller{
		source:       src,
		processor:    proc,
		logger:       log,
		batchSize:    defaultBatchSize,
		receiveWait:  defaultReceiveWait,
		pollDelay:    defaultPollDelay,
		backoffDelay: defaultBackoffDelay,
		sleep:        sleepCtx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until ctx is cancelled. One cycle runs at a time; messages
// within a batch are processed concurrently. A receive failure is logged
// and retried after the backoff delay, never fatal.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("decision listener started (batch=%d wait=%s)", p.batchSize, p.receiveWait)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		msgs, err := p.source.Receive(ctx, p.batchSize, p.receiveWait)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.metrics.receiveError()
			p.logger.Error("error receiving decision messages: %v", err)
			p.sleep(ctx, p.backoffDelay)
			continue
		}

		var wg sync.WaitGroup
		for _, msg := range msgs {
			wg.Add(1)
			go func(m messaging.Message) {
				defer wg.Done()
				p.handle(ctx, m)
			}(msg)
		}
		wg.Wait()

		p.sleep(ctx, p.pollDelay)
	}
}

// handle processes one delivery. The message is deleted only after the
// processor succeeds; any failure leaves it on the queue for redelivery.
func (p *Poller) handle(ctx context.Context, msg messaging.Message) {
	start := time.Now()
	err := p.process(ctx, msg.Body)
	p.metrics.observe(time.Since(start), err == nil)
	if err != nil {
		p.logger.Error("failed to process message %s: %v", msg.ID, err)
		return
	}
	if err := p.source.Delete(ctx, msg.Receipt); err != nil {
		// Processed but not deleted: the message will come around again.
		p.logger.Warn("processed message %s but delete failed: %v", msg.ID, err)
	}
}

func (p *Poller) process(ctx context.Context, body []byte) error {
	in, err := messaging.DecodeInbound(body)
	if err != nil {
		return err
	}
	switch m := in.(type) {
	case messaging.StatusUpdateEvent:
		_, err = p.processor.ProcessAutomatic(ctx, m)
	case messaging.ManualDecision:
		_, err = p.processor.ProcessManual(ctx, m)
	default:
		err = fmt.Errorf("listener: unexpected inbound message %T", in)
	}
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
