package position

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const readingsBufferSize = 16

// Status - текущее состояние отслеживания, видимое клиентам
type Status struct {
	Active    bool      `json:"active"`
	Ready     bool      `json:"ready"`
	LastError ErrorKind `json:"last_error,omitempty"`
}

// Tracker - адаптер над датчиком: перезапускаемый поток фиксов,
// не более одной активной подписки одновременно.
type Tracker struct {
	sensor Sensor
	opts   WatchOptions
	logger *logrus.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	statusMu sync.RWMutex
	status   Status

	out chan Reading
}

// NewTracker создает Tracker. sensor может быть nil: устройство без геолокации.
func NewTracker(sensor Sensor, opts WatchOptions, logger *logrus.Logger) *Tracker {
	return &Tracker{
		sensor: sensor,
		opts:   opts,
		logger: logger,
		out:    make(chan Reading, readingsBufferSize),
	}
}

// Readings возвращает общий для всех перезапусков поток фиксов и ошибок
func (t *Tracker) Readings() <-chan Reading {
	return t.out
}

// Start отменяет предыдущую подписку и открывает новую
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := t.logger.WithFields(logrus.Fields{
		"component": "position",
		"method":    "Start",
	})

	t.stopLocked()

	if t.sensor == nil {
		t.setStatus(Status{LastError: Unsupported})
		log.Warn("Positioning is not supported on this device")
		return NewSensorError(Unsupported, nil)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	readings, err := t.sensor.Watch(watchCtx, t.opts)
	if err != nil {
		cancel()
		kind := KindOf(err)
		t.setStatus(Status{LastError: kind})
		log.WithError(err).Warn("Failed to start position watch")
		return fmt.Errorf("position: could not start watch: %w", NewSensorError(kind, err))
	}

	done := make(chan struct{})
	t.cancel = cancel
	t.done = done
	t.setStatus(Status{Active: true})

	go t.forward(watchCtx, readings, done)

	log.WithField("timeout", t.opts.Timeout).Info("Position tracking started")
	return nil
}

// Stop освобождает подписку на датчик и дожидается завершения пересылки
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.statusMu.Lock()
	t.status.Active = false
	t.status.Ready = false
	t.statusMu.Unlock()
}

// Status возвращает текущее состояние отслеживания
func (t *Tracker) Status() Status {
	t.statusMu.RLock()
	defer t.statusMu.RUnlock()
	return t.status
}

func (t *Tracker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
	dropped := t.drainLocked()
	t.logger.WithFields(logrus.Fields{
		"component": "position",
		"dropped":   dropped,
	}).Debug("Previous position watch released")
}

// drainLocked выбрасывает показания прошлой подписки, еще не прочитанные потребителем.
// Пересылка к этому моменту завершена, так что новых записей в out нет.
func (t *Tracker) drainLocked() int {
	dropped := 0
	for {
		select {
		case <-t.out:
			dropped++
		default:
			return dropped
		}
	}
}

func (t *Tracker) forward(ctx context.Context, readings <-chan Reading, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-readings:
			if !ok {
				return
			}
			t.record(r)
			select {
			case t.out <- r:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (t *Tracker) record(r Reading) {
	t.statusMu.Lock()
	defer t.statusMu.Unlock()

	if r.Err != nil {
		t.status.Ready = false
		t.status.LastError = KindOf(r.Err)
		return
	}
	// Успешный фикс снимает ранее выставленную ошибку
	t.status.Ready = true
	t.status.LastError = ""
}

func (t *Tracker) setStatus(s Status) {
	t.statusMu.Lock()
	t.status = s
	t.statusMu.Unlock()
}
