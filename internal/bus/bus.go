package bus

import "context"

// Bus - общий канал публикации/подписки, ограниченный семьей (topic).
// Доставка at-most-once, без подтверждений и без повтора:
// подписчик, подключившийся после публикации, ее не увидит.
type Bus interface {
	Publish(ctx context.Context, topic string, msg Message) error
	Subscribe(ctx context.Context, topic string) (Subscription, error)
}

// Subscription - активная подписка на topic
type Subscription interface {
	Messages() <-chan Message
	Close() error
}

// Topic возвращает имя канала для семьи
func Topic(prefix, familyID string) string {
	return prefix + ":" + familyID
}
