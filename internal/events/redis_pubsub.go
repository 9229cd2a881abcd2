package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher sends events over Redis pub/sub channels.
type RedisPublisher struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisPublisher(client *redis.Client, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, stream string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}
	if err := p.client.Publish(ctx, stream, data).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, stream, err)
	}
	p.log.Debug("event published",
		zap.String("stream", stream), zap.String("type", event.Type))
	return nil
}

// RedisSubscriber receives events from a Redis pub/sub channel and
// dispatches them to a handler on a background goroutine.
type RedisSubscriber struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisSubscriber(client *redis.Client, log *zap.Logger) *RedisSubscriber {
	return &RedisSubscriber{client: client, log: log}
}

// Subscribe starts consuming stream until ctx is cancelled. Malformed
// payloads are logged and skipped.
func (s *RedisSubscriber) Subscribe(ctx context.Context, stream string, handler func(Event)) error {
	pubsub := s.client.Subscribe(ctx, stream)

	// Fail fast if the subscription could not be established.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe to %s: %w", stream, err)
	}

	go s.consume(ctx, stream, pubsub, handler)
	return nil
}

func (s *RedisSubscriber) consume(ctx context.Context, stream string, pubsub *redis.PubSub, handler func(Event)) {
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.log.Error("malformed event payload",
					zap.String("stream", stream), zap.Error(err))
				continue
			}
			handler(event)
		}
	}
}
