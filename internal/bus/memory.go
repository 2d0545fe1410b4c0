package bus

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// MemoryHub - канал синхронизации внутри одного процесса.
// Семантика та же, что у Redis Pub/Sub: FIFO для живых подписчиков, без повтора.
type MemoryHub struct {
	mu     sync.Mutex
	topics map[string]map[*memorySubscription]struct{}
	logger *logrus.Logger
}

// NewMemoryHub создает пустой хаб
func NewMemoryHub(logger *logrus.Logger) *MemoryHub {
	return &MemoryHub{
		topics: make(map[string]map[*memorySubscription]struct{}),
		logger: logger,
	}
}

// Client возвращает Bus от имени инстанса origin
func (h *MemoryHub) Client(origin string) *MemoryBus {
	return &MemoryBus{hub: h, origin: origin}
}

// MemoryBus - Bus инстанса поверх MemoryHub
type MemoryBus struct {
	hub    *MemoryHub
	origin string
}

// Publish доставляет сообщение всем текущим подписчикам topic, кроме отправителя
func (b *MemoryBus) Publish(_ context.Context, topic string, msg Message) error {
	msg.Origin = b.origin

	// Сериализация дает подписчикам независимую копию, как и у Redis
	payload, err := Encode(msg)
	if err != nil {
		return err
	}

	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()

	for sub := range b.hub.topics[topic] {
		if sub.origin == b.origin {
			continue
		}
		copyMsg, err := Decode(payload)
		if err != nil {
			return err
		}
		select {
		case sub.out <- copyMsg:
		default:
			b.hub.logger.WithFields(logrus.Fields{
				"topic":  topic,
				"origin": sub.origin,
				"type":   msg.Type,
			}).Warn("Subscriber buffer full, sync message dropped")
		}
	}
	return nil
}

// Subscribe регистрирует подписчика
func (b *MemoryBus) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &memorySubscription{
		hub:    b.hub,
		topic:  topic,
		origin: b.origin,
		out:    make(chan Message, subscriptionBufferSize),
	}

	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()

	if b.hub.topics[topic] == nil {
		b.hub.topics[topic] = make(map[*memorySubscription]struct{})
	}
	b.hub.topics[topic][sub] = struct{}{}
	return sub, nil
}

type memorySubscription struct {
	hub    *MemoryHub
	topic  string
	origin string
	out    chan Message
	closed bool
}

func (s *memorySubscription) Messages() <-chan Message {
	return s.out
}

func (s *memorySubscription) Close() error {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	delete(s.hub.topics[s.topic], s)
	if len(s.hub.topics[s.topic]) == 0 {
		delete(s.hub.topics, s.topic)
	}
	close(s.out)
	return nil
}
