package events

import (
	"context"
	"encoding/json"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StateChangedChannel is the pub/sub channel OrderStateChanged events go to.
const StateChangedChannel = "orders.state-changed"

// RedisPublisher broadcasts lifecycle events over Redis pub/sub. Delivery is
// best-effort: subscribers that are offline miss the event, which matches the
// fire-and-forget contract of the port.
type RedisPublisher struct {
	client *redis.Client
	logger *zap.Logger
}

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{client: client, logger: logger}
}

func (p *RedisPublisher) PublishOrderStateChanged(ctx context.Context, evt entities.OrderStateChangedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, StateChangedChannel, payload).Err(); err != nil {
		return err
	}

	p.logger.Debug("event published",
		zap.String("channel", StateChangedChannel),
		zap.String("order_id", evt.OrderID),
		zap.String("to_step", string(evt.ToStep)),
	)
	return nil
}

// NopPublisher drops every event. Used when no Redis endpoint is configured:
// transitions still work, subscribers just see nothing.
type NopPublisher struct{}

var _ interfaces.IEventPublisher = (*NopPublisher)(nil)

func (NopPublisher) PublishOrderStateChanged(context.Context, entities.OrderStateChangedEvent) error {
	return nil
}

// ConnectPublisher returns a Redis-backed publisher when addr is set, the
// no-op publisher otherwise.
func ConnectPublisher(addr, password string, logger *zap.Logger) interfaces.IEventPublisher {
	if addr == "" {
		if logger != nil {
			logger.Info("no redis endpoint configured, events disabled")
		}
		return NopPublisher{}
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return NewRedisPublisher(client, logger)
}
