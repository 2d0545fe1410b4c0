package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const subscriptionBufferSize = 64

// RedisBus - реализация Bus на Redis Pub/Sub
type RedisBus struct {
	redisClient *redis.Client
	origin      string
	logger      *logrus.Logger
}

// NewRedisBus создает RedisBus. origin - id инстанса, собственные сообщения отбрасываются.
func NewRedisBus(client *redis.Client, origin string, logger *logrus.Logger) *RedisBus {
	return &RedisBus{
		redisClient: client,
		origin:      origin,
		logger:      logger,
	}
}

// Publish публикует сообщение в канал Redis
func (b *RedisBus) Publish(ctx context.Context, topic string, msg Message) error {
	msg.Origin = b.origin
	payload, err := Encode(msg)
	if err != nil {
		return err
	}

	if err := b.redisClient.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to Redis: %w", msg.Type, err)
	}
	return nil
}

// Subscribe подписывается на канал и дожидается подтверждения от Redis
func (b *RedisBus) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	pubsub := b.redisClient.Subscribe(ctx, topic)

	// Receive дожидается подтверждения подписки, иначе ошибка потеряется
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		out:    make(chan Message, subscriptionBufferSize),
		closed: make(chan struct{}),
	}
	go sub.run(b.origin, b.logger.WithField("topic", topic))
	return sub, nil
}

type redisSubscription struct {
	pubsub    *redis.PubSub
	out       chan Message
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *redisSubscription) Messages() <-chan Message {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		err = s.pubsub.Close()
	})
	return err
}

func (s *redisSubscription) run(origin string, log *logrus.Entry) {
	defer close(s.out)

	for raw := range s.pubsub.Channel() {
		msg, err := Decode([]byte(raw.Payload))
		if err != nil {
			log.WithError(err).Warn("Ignoring malformed sync message")
			continue
		}
		if msg.Origin == origin {
			continue
		}

		select {
		case s.out <- msg:
		case <-s.closed:
			return
		}
	}
}
