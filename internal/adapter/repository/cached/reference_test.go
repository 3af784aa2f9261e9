package cached

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/loantype"
	"loanflow/internal/testutil/statusmock"
	"loanflow/internal/testutil/typemock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLoanTypes_ReadThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	var hits int32
	next := &typemock.Repo{
		GetByNameFn: func(ctx context.Context, name string) (*loantype.LoanType, error) {
			atomic.AddInt32(&hits, 1)
			return &loantype.LoanType{ID: 1, Name: name, MinimumAmount: 1000, MaximumAmount: 50000, InterestRate: 12}, nil
		},
	}
	c := NewLoanTypes(next, rdb, time.Minute)

	first, err := c.GetByName(ctx, "personal")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	second, err := c.GetByName(ctx, "personal")
	if err != nil {
		t.Fatalf("GetByName cached: %v", err)
	}
	if hits != 1 {
		t.Fatalf("store hits = %d, want 1 (second read from cache)", hits)
	}
	if second.Name != first.Name || second.InterestRate != first.InterestRate {
		t.Errorf("cached value differs: %+v vs %+v", first, second)
	}

	// TTL expiry sends the next read back to the store
	mr.FastForward(2 * time.Minute)
	if _, err := c.GetByName(ctx, "personal"); err != nil {
		t.Fatalf("GetByName after expiry: %v", err)
	}
	if hits != 2 {
		t.Fatalf("store hits = %d, want 2 after expiry", hits)
	}
}

func TestStatuses_CacheUnavailableFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()
	ctx := context.Background()

	next := &statusmock.Repo{
		GetByNameFn: func(ctx context.Context, name string) (*loanstatus.LoanStatus, error) {
			return &loanstatus.LoanStatus{ID: 2, Name: name}, nil
		},
	}
	c := NewStatuses(next, rdb, time.Minute)

	got, err := c.GetByName(ctx, loanstatus.NameApproved)
	if err != nil {
		t.Fatalf("GetByName with dead cache: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("unexpected status: %+v", got)
	}
}

func TestStatuses_FindIDsByNames_CachedByNameSet(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	var hits int32
	next := &statusmock.Repo{
		FindIDsByNamesFn: func(ctx context.Context, names []string) ([]uint64, error) {
			atomic.AddInt32(&hits, 1)
			return []uint64{2}, nil
		},
	}
	c := NewStatuses(next, rdb, time.Minute)

	ids, err := c.FindIDsByNames(ctx, []string{loanstatus.NameApproved, loanstatus.NameRejected})
	if err != nil || len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("FindIDsByNames: ids=%v err=%v", ids, err)
	}
	// same set in a different order reads from the cache
	ids, err = c.FindIDsByNames(ctx, []string{loanstatus.NameRejected, loanstatus.NameApproved})
	if err != nil || len(ids) != 1 {
		t.Fatalf("FindIDsByNames cached: ids=%v err=%v", ids, err)
	}
	if hits != 1 {
		t.Fatalf("store hits = %d, want 1", hits)
	}

	// empty input never touches the cache
	if ids, err := c.FindIDsByNames(ctx, nil); err != nil || ids != nil {
		t.Fatalf("empty input: ids=%v err=%v", ids, err)
	}
}
