package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/igloo_sync/internal/models"
)

const (
	webhookQueuePrefix = "webhook_events"
)

// Source - откуда пришел отчет, о котором уведомляем
type Source string

const (
	SourceLocal Source = "local"
	SourcePeer  Source = "peer"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	FamilyID  string                `json:"family_id"`
	Source    Source                `json:"source"`
	Report    models.ActivityReport `json:"report"`
	Timestamp time.Time             `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// QueueKey возвращает ключ очереди вебхуков инстанса
func QueueKey(ownerID string) string {
	return webhookQueuePrefix + ":" + ownerID
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client, queueKey string) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
		queueKey:    queueKey,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
