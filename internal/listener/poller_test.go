package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/domain/uow"
	"loanflow/internal/testutil/loanmock"
	"loanflow/internal/testutil/sendermock"
	"loanflow/internal/testutil/sourcemock"
	"loanflow/internal/testutil/statusmock"
	"loanflow/internal/testutil/uowmock"
	"loanflow/internal/usecase/decision"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

func testProcessor(t *testing.T) (*decision.Processor, *sendermock.Sender) {
	t.Helper()
	loans := &loanmock.Repo{}
	loans.GetByLoanIDFn = func(ctx context.Context, loanID string) (*loan.Loan, error) {
		if loanID != "a1b2" {
			return nil, gorm.ErrRecordNotFound
		}
		return &loan.Loan{ID: 1, LoanID: "a1b2", Amount: 1000, Email: "ana@example.com"}, nil
	}
	statuses := &statusmock.Repo{}
	statuses.GetByNameFn = func(ctx context.Context, name string) (*loanstatus.LoanStatus, error) {
		if name != loanstatus.NameApproved && name != loanstatus.NameRejected {
			return nil, gorm.ErrRecordNotFound
		}
		return &loanstatus.LoanStatus{ID: 2, Name: name}, nil
	}
	sender := &sendermock.Sender{}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Statuses: statuses})
	proc := decision.NewProcessor(decision.NewUpdater(tx, logging.NewNop()), sender, logging.NewNop())
	return proc, sender
}

func verdictBody(t *testing.T, loanID, status string, automatic bool) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"idLoan":              loanID,
		"status":              status,
		"automaticValidation": automatic,
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestRun_ProcessesAndDeletes(t *testing.T) {
	proc, sender := testProcessor(t)
	src := &sourcemock.Source{}

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	src.ReceiveFn = func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			cancel()
			return nil, nil
		}
		if max != 10 {
			t.Errorf("batch size = %d, want 10", max)
		}
		return []messaging.Message{
			{ID: "m-1", Receipt: "r-1", Body: verdictBody(t, "a1b2", loanstatus.NameRejected, true)},
		}, nil
	}

	p := NewPoller(src, proc, logging.NewNop(), WithSleep(noSleep))
	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: want context.Canceled, got %v", err)
	}

	if got := src.Deleted(); len(got) != 1 || got[0] != "r-1" {
		t.Fatalf("deleted receipts = %v, want [r-1]", got)
	}
	if got := sender.OfKind("StatusUpdateNotification"); len(got) != 1 {
		t.Fatalf("want 1 notification, got %d", len(got))
	}
}

func TestRun_FailedMessageStaysOnQueue(t *testing.T) {
	proc, sender := testProcessor(t)
	src := &sourcemock.Source{}

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	src.ReceiveFn = func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			cancel()
			return nil, nil
		}
		return []messaging.Message{
			// unknown loan id: processing fails
			{ID: "m-1", Receipt: "r-1", Body: verdictBody(t, "nope", loanstatus.NameApproved, true)},
		}, nil
	}

	p := NewPoller(src, proc, logging.NewNop(), WithSleep(noSleep))
	_ = p.Run(ctx)

	if got := src.Deleted(); len(got) != 0 {
		t.Fatalf("failed message must not be deleted, got %v", got)
	}
	if n := len(sender.All()); n != 0 {
		t.Fatalf("no publishes expected on failure, got %d", n)
	}
}

func TestRun_MalformedMessageNotDeleted(t *testing.T) {
	proc, _ := testProcessor(t)
	src := &sourcemock.Source{}

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	src.ReceiveFn = func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			cancel()
			return nil, nil
		}
		return []messaging.Message{
			{ID: "m-1", Receipt: "r-1", Body: []byte(`{"idLoan":"a1b2","status":"Approved"}`)},
		}, nil
	}

	p := NewPoller(src, proc, logging.NewNop(), WithSleep(noSleep))
	_ = p.Run(ctx)

	if got := src.Deleted(); len(got) != 0 {
		t.Fatalf("message without discriminator must not be deleted, got %v", got)
	}
}

func TestRun_ReceiveErrorBacksOff(t *testing.T) {
	proc, _ := testProcessor(t)
	src := &sourcemock.Source{}

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	src.ReceiveFn = func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			cancel()
			return nil, nil
		}
		return nil, errors.New("broker unavailable")
	}

	var slept []time.Duration
	sleep := func(ctx context.Context, d time.Duration) { slept = append(slept, d) }

	p := NewPoller(src, proc, logging.NewNop(),
		WithSleep(sleep),
		WithDelays(20*time.Second, time.Second, 5*time.Second),
		WithMetrics(NewMetrics(prometheus.NewRegistry())),
	)
	_ = p.Run(ctx)

	if len(slept) == 0 || slept[0] != 5*time.Second {
		t.Fatalf("want backoff sleep of 5s after receive error, got %v", slept)
	}
}

func TestRun_ManualDecisionRouted(t *testing.T) {
	proc, sender := testProcessor(t)
	src := &sourcemock.Source{}

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	src.ReceiveFn = func(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			cancel()
			return nil, nil
		}
		return []messaging.Message{
			{ID: "m-1", Receipt: "r-1", Body: verdictBody(t, "a1b2", loanstatus.NameRejected, false)},
		}, nil
	}

	p := NewPoller(src, proc, logging.NewNop(), WithSleep(noSleep))
	_ = p.Run(ctx)

	if got := sender.OfKind("StatusNotification"); len(got) != 1 {
		t.Fatalf("manual decision must emit the simple notification, got %+v", sender.All())
	}
}

func noSleep(ctx context.Context, d time.Duration) {}
