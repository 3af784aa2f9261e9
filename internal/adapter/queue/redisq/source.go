package redisq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loanflow/internal/domain/messaging"

	"github.com/redis/go-redis/v9"
)

// defaultReclaimIdle is how long a delivered-but-unacked entry must sit in
// the pending list before another poll may claim it back.
const defaultReclaimIdle = time.Minute

// Source reads one stream through a consumer group. The stream entry id
// doubles as the receipt handle; Delete acknowledges and removes it.
type Source struct {
	rdb         *redis.Client
	stream      string
	group       string
	consumer    string
	reclaimIdle time.Duration
}

type SourceOption func(*Source)

// WithReclaimIdle sets the minimum idle time before a pending entry is
// claimed back for redelivery.
func WithReclaimIdle(d time.Duration) SourceOption {
	return func(s *Source) { s.reclaimIdle = d }
}

func NewSource(rdb *redis.Client, stream, group, consumer string, opts ...SourceOption) *Source {
	s := &Source{
		rdb:         rdb,
		stream:      stream,
		group:       group,
		consumer:    consumer,
		reclaimIdle: defaultReclaimIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureGroup creates the consumer group (and the stream) if missing.
func (s *Source) EnsureGroup(ctx context.Context) error {
	err := s.rdb.XGroupCreateMkStream(ctx, s.stream, s.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("redisq: create group %s on %s: %w", s.group, s.stream, err)
	}
	return nil
}

// Receive first claims back entries that were delivered to the group but
// never acknowledged, then reads never-delivered entries. Without the claim
// pass a message whose processing failed would sit in the pending list
// forever and never be redelivered.
func (s *Source) Receive(ctx context.Context, max int, wait time.Duration) ([]messaging.Message, error) {
	reclaimed, err := s.reclaim(ctx, max)
	if err != nil {
		return nil, err
	}
	if len(reclaimed) > 0 {
		return reclaimed, nil
	}

	res, err := s.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, ">"},
		Count:    int64(max),
		Block:    wait,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // bounded wait expired with nothing pending
	}
	if err != nil {
		return nil, fmt.Errorf("redisq: receive from %s: %w", s.stream, err)
	}

	var out []messaging.Message
	for _, stream := range res {
		out = appendMessages(out, stream.Messages)
	}
	return out, nil
}

func (s *Source) reclaim(ctx context.Context, max int) ([]messaging.Message, error) {
	entries, _, err := s.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   s.stream,
		Group:    s.group,
		Consumer: s.consumer,
		MinIdle:  s.reclaimIdle,
		Start:    "0-0",
		Count:    int64(max),
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redisq: reclaim pending on %s: %w", s.stream, err)
	}
	return appendMessages(nil, entries), nil
}

func appendMessages(out []messaging.Message, entries []redis.XMessage) []messaging.Message {
	for _, entry := range entries {
		body, ok := entry.Values[bodyField].(string)
		if !ok {
			continue
		}
		out = append(out, messaging.Message{
			ID:      entry.ID,
			Receipt: entry.ID,
			Body:    []byte(body),
		})
	}
	return out
}

func (s *Source) Delete(ctx context.Context, receipt string) error {
	if err := s.rdb.XAck(ctx, s.stream, s.group, receipt).Err(); err != nil {
		return fmt.Errorf("redisq: ack %s: %w", receipt, err)
	}
	if err := s.rdb.XDel(ctx, s.stream, receipt).Err(); err != nil {
		return fmt.Errorf("redisq: delete %s: %w", receipt, err)
	}
	return nil
}
