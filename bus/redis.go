package bus

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBus publishes events on a Redis pub/sub channel. Redis delivers
// to all subscribed connections, the publisher's included, so local
// subscribers and other instances are notified through the same path.
type RedisBus struct {
	client  *redis.Client
	channel string
	local   *LocalBus
	logger  *zap.Logger
	pubsub  *redis.PubSub
}

func NewRedisBus(ctx context.Context, client *redis.Client, channel string, logger *zap.Logger) *RedisBus {
	b := &RedisBus{
		client:  client,
		channel: channel,
		local:   NewLocalBus(),
		logger:  logger,
		pubsub:  client.Subscribe(ctx, channel),
	}

	go b.receive(ctx)
	return b
}

func (b *RedisBus) receive(ctx context.Context) {
	for msg := range b.pubsub.Channel() {
		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			b.logger.Warn("dropping malformed cart event", zap.Error(err))
			continue
		}
		_ = b.local.Publish(ctx, ev)
	}
}

func (b *RedisBus) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, data).Err()
}

func (b *RedisBus) Subscribe(h Handler) func() {
	return b.local.Subscribe(h)
}

func (b *RedisBus) Close() error {
	return b.pubsub.Close()
}
