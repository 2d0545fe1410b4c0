package position

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const pushBufferSize = 16

type pushWatch struct {
	in   chan Reading
	opts WatchOptions
}

// PushSensor - датчик, в который устройство передает позиции (например, через HTTP).
// Сам отсчитывает таймаут фикса и отбрасывает закешированные позиции.
type PushSensor struct {
	mu      sync.Mutex
	watches map[*pushWatch]struct{}
	opts    WatchOptions
	lastFix time.Time
	now     func() time.Time
}

// NewPushSensor создает PushSensor
func NewPushSensor() *PushSensor {
	return &PushSensor{
		watches: make(map[*pushWatch]struct{}),
		opts:    DefaultWatchOptions(),
		now:     time.Now,
	}
}

// Watch открывает поток позиций, который живет до отмены ctx
func (s *PushSensor) Watch(ctx context.Context, opts WatchOptions) (<-chan Reading, error) {
	w := &pushWatch{
		in:   make(chan Reading, pushBufferSize),
		opts: opts,
	}

	s.mu.Lock()
	s.watches[w] = struct{}{}
	s.opts = opts
	s.mu.Unlock()

	out := make(chan Reading)
	go s.run(ctx, w, out)
	return out, nil
}

// Push передает новую позицию всем активным подпискам
func (s *PushSensor) Push(fix Fix) error {
	if !fix.Valid() {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidFix, fix.Latitude, fix.Longitude)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.watches) == 0 {
		return ErrNotTracking
	}

	now := s.now()
	if fix.Timestamp.IsZero() {
		fix.Timestamp = now
	}
	if !fix.Timestamp.After(s.lastFix) {
		return fmt.Errorf("%w: timestamp %s is not newer than last fix", ErrStaleFix, fix.Timestamp.Format(time.RFC3339Nano))
	}
	if s.opts.MaximumAge > 0 && now.Sub(fix.Timestamp) > s.opts.MaximumAge {
		return fmt.Errorf("%w: fix is older than %s", ErrStaleFix, s.opts.MaximumAge)
	}

	if err := s.broadcastLocked(Reading{Fix: fix}); err != nil {
		return err
	}
	s.lastFix = fix.Timestamp
	return nil
}

// Fail сообщает подпискам об ошибке датчика на стороне устройства
func (s *PushSensor) Fail(kind ErrorKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.watches) == 0 {
		return ErrNotTracking
	}
	return s.broadcastLocked(Reading{Err: NewSensorError(kind, nil)})
}

func (s *PushSensor) broadcastLocked(r Reading) error {
	var busy bool
	for w := range s.watches {
		select {
		case w.in <- r:
		default:
			busy = true
		}
	}
	if busy {
		return ErrSensorBusy
	}
	return nil
}

func (s *PushSensor) run(ctx context.Context, w *pushWatch, out chan<- Reading) {
	defer close(out)
	defer func() {
		s.mu.Lock()
		delete(s.watches, w)
		s.mu.Unlock()
	}()

	// Без таймаута timeoutC остается nil и никогда не срабатывает
	var timer *time.Timer
	var timeoutC <-chan time.Time
	if w.opts.Timeout > 0 {
		timer = time.NewTimer(w.opts.Timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	for {
		var r Reading
		select {
		case <-ctx.Done():
			return
		case r = <-w.in:
			if r.Err == nil && timer != nil {
				timer.Reset(w.opts.Timeout)
			}
		case <-timeoutC:
			r = Reading{Err: NewSensorError(Timeout, fmt.Errorf("no fix within %s", w.opts.Timeout))}
			timer.Reset(w.opts.Timeout)
		}

		select {
		case out <- r:
		case <-ctx.Done():
			return
		}
	}
}
