// Package redisq carries the service's messages over Redis Streams. Each
// named channel is a stream; consumers read through a consumer group and an
// entry stays pending until it is acknowledged, so delivery is
// at-least-once.
package redisq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const bodyField = "body"

type Publisher struct{ rdb *redis.Client }

func NewPublisher(rdb *redis.Client) *Publisher { return &Publisher{rdb: rdb} }

// Publish appends the JSON-encoded payload to the channel's stream and
// returns the stream entry id.
func (p *Publisher) Publish(ctx context.Context, channel string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("redisq: marshal payload for %s: %w", channel, err)
	}
	id, err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: channel,
		Values: map[string]any{bodyField: body},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("redisq: publish to %s: %w", channel, err)
	}
	return id, nil
}
