package position

import (
	"context"
	"time"
)

// DefaultFixTimeout - через сколько без сигнала попытка получить фикс считается неудачной
const DefaultFixTimeout = 15 * time.Second

// Fix - одна позиция, полученная от датчика
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Valid проверяет диапазоны координат
func (f Fix) Valid() bool {
	return f.Latitude >= -90 && f.Latitude <= 90 && f.Longitude >= -180 && f.Longitude <= 180
}

// Reading - элемент потока датчика: либо фикс, либо ошибка
type Reading struct {
	Fix Fix
	Err error
}

// WatchOptions - параметры подписки на датчик
type WatchOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge = 0 запрещает повторное использование закешированного фикса
	MaximumAge time.Duration
}

// DefaultWatchOptions возвращает максимальную точность, таймаут 15с и запрет кеша
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		HighAccuracy: true,
		Timeout:      DefaultFixTimeout,
		MaximumAge:   0,
	}
}

// Sensor - непрерывный источник позиций устройства.
// Канал закрывается после отмены ctx.
type Sensor interface {
	Watch(ctx context.Context, opts WatchOptions) (<-chan Reading, error)
}
