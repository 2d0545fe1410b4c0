package activity

import (
	"sync"

	"github.com/shenikar/igloo_sync/internal/models"
)

// DefaultCapacity - сколько последних отчетов хранит лента
const DefaultCapacity = 15

// Log - ограниченная лента отчетов, новые сверху.
// Порядок определяется порядком вставки, а не временем отчета.
type Log struct {
	mu       sync.RWMutex
	reports  []models.ActivityReport
	capacity int
}

// NewLog создает ленту заданной емкости
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		reports:  make([]models.ActivityReport, 0, capacity),
		capacity: capacity,
	}
}

// Append добавляет отчет в начало и вытесняет самые старые сверх емкости
func (l *Log) Append(report models.ActivityReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.ActivityReport, 0, l.capacity)
	next = append(next, report)
	next = append(next, l.reports...)
	if len(next) > l.capacity {
		next = next[:l.capacity]
	}
	l.reports = next
}

// All возвращает копию ленты, новые сверху
func (l *Log) All() []models.ActivityReport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]models.ActivityReport, len(l.reports))
	copy(result, l.reports)
	return result
}

// Len возвращает число отчетов в ленте
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.reports)
}

// Restore заменяет ленту сохраненной (уже упорядоченной новые сверху)
func (l *Log) Restore(reports []models.ActivityReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(reports) > l.capacity {
		reports = reports[:l.capacity]
	}
	l.reports = make([]models.ActivityReport, len(reports), l.capacity)
	copy(l.reports, reports)
}
