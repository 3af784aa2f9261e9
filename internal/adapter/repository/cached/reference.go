// Package cached adds a redis read-through layer in front of the loan-type
// and loan-status stores. Every cache failure falls back to the underlying
// store.
package cached

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/loantype"

	"github.com/redis/go-redis/v9"
)

const (
	typeKeyPrefix   = "ref:loantype:"
	statusKeyPrefix = "ref:loanstatus:"
)

func get[T any](ctx context.Context, rdb *redis.Client, key string) (*T, bool) {
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func set(ctx context.Context, rdb *redis.Client, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	// A failed cache write is non-fatal; the next read hits the store.
	_ = rdb.Set(ctx, key, data, ttl).Err()
}

// LoanTypes decorates a loantype.Repository with name-keyed caching.
type LoanTypes struct {
	next loantype.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewLoanTypes(next loantype.Repository, rdb *redis.Client, ttl time.Duration) *LoanTypes {
	return &LoanTypes{next: next, rdb: rdb, ttl: ttl}
}

func (c *LoanTypes) GetByName(ctx context.Context, name string) (*loantype.LoanType, error) {
	if v, ok := get[loantype.LoanType](ctx, c.rdb, typeKeyPrefix+name); ok {
		return v, nil
	}
	v, err := c.next.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	set(ctx, c.rdb, typeKeyPrefix+name, v, c.ttl)
	return v, nil
}

// Statuses decorates a loanstatus.Repository with name-keyed caching.
type Statuses struct {
	next loanstatus.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewStatuses(next loanstatus.Repository, rdb *redis.Client, ttl time.Duration) *Statuses {
	return &Statuses{next: next, rdb: rdb, ttl: ttl}
}

func (c *Statuses) GetByName(ctx context.Context, name string) (*loanstatus.LoanStatus, error) {
	if v, ok := get[loanstatus.LoanStatus](ctx, c.rdb, statusKeyPrefix+name); ok {
		return v, nil
	}
	v, err := c.next.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	set(ctx, c.rdb, statusKeyPrefix+name, v, c.ttl)
	return v, nil
}

// FindIDsByNames caches the resolved id set under the sorted name list, so
// repeated listing filters skip the reference table.
func (c *Statuses) FindIDsByNames(ctx context.Context, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return c.next.FindIDsByNames(ctx, names)
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	key := statusKeyPrefix + "ids:" + strings.Join(sorted, ",")

	if v, ok := get[[]uint64](ctx, c.rdb, key); ok {
		return *v, nil
	}
	ids, err := c.next.FindIDsByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	set(ctx, c.rdb, key, ids, c.ttl)
	return ids, nil
}
