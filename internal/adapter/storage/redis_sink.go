package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
)

const defaultEventStream = "shop-events"

// RedisSink appends ledger events to a Redis stream. The stream is the
// append-only notification log; this process only ever writes to it.
type RedisSink struct {
	client *redis.Client
	stream string
}

func NewRedisSink(client *redis.Client, stream string) *RedisSink {
	if stream == "" {
		stream = defaultEventStream
	}
	return &RedisSink{client: client, stream: stream}
}

func (r *RedisSink) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"type":    event.Type(),
			"payload": string(payload),
		},
	}).Err()
}

func (r *RedisSink) Stream() string {
	return r.stream
}
