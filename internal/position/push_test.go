package position

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Reading) Reading {
	t.Helper()
	select {
	case r, ok := <-ch:
		require.True(t, ok, "channel closed")
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reading")
	}
	return Reading{}
}

func TestPushSensor_PushWithoutWatch(t *testing.T) {
	s := NewPushSensor()
	assert.ErrorIs(t, s.Push(Fix{Latitude: 1, Longitude: 2}), ErrNotTracking)
	assert.ErrorIs(t, s.Fail(PermissionDenied), ErrNotTracking)
}

func TestPushSensor_DeliversFixes(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	require.NoError(t, s.Push(Fix{Latitude: 37, Longitude: -122}))
	r := receive(t, ch)
	require.NoError(t, r.Err)
	assert.Equal(t, 37.0, r.Fix.Latitude)
	assert.False(t, r.Fix.Timestamp.IsZero())
}

func TestPushSensor_RejectsInvalidAndCachedFixes(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := s.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Push(Fix{Latitude: 91, Longitude: 0}), ErrInvalidFix)

	ts := time.Now()
	require.NoError(t, s.Push(Fix{Latitude: 1, Longitude: 1, Timestamp: ts}))
	assert.ErrorIs(t, s.Push(Fix{Latitude: 1, Longitude: 1, Timestamp: ts}), ErrStaleFix)
	assert.ErrorIs(t, s.Push(Fix{Latitude: 1, Longitude: 1, Timestamp: ts.Add(-time.Second)}), ErrStaleFix)
}

func TestPushSensor_MaximumAge(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := s.Watch(ctx, WatchOptions{MaximumAge: time.Minute})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Push(Fix{Latitude: 1, Longitude: 1, Timestamp: time.Now().Add(-time.Hour)}), ErrStaleFix)
	assert.NoError(t, s.Push(Fix{Latitude: 1, Longitude: 1, Timestamp: time.Now().Add(-time.Second)}))
}

func TestPushSensor_Fail(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	require.NoError(t, s.Fail(PermissionDenied))
	r := receive(t, ch)
	assert.Equal(t, PermissionDenied, KindOf(r.Err))
}

func TestPushSensor_Timeout(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx, WatchOptions{Timeout: 30 * time.Millisecond})
	require.NoError(t, err)

	r := receive(t, ch)
	assert.Equal(t, Timeout, KindOf(r.Err))

	// После таймаута подписка продолжает работать
	require.NoError(t, s.Push(Fix{Latitude: 2, Longitude: 3}))
	for {
		r = receive(t, ch)
		if r.Err == nil {
			break
		}
	}
	assert.Equal(t, 2.0, r.Fix.Latitude)
}

func TestPushSensor_CancelClosesChannel(t *testing.T) {
	s := NewPushSensor()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := s.Watch(ctx, WatchOptions{})
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed")
	}

	assert.Eventually(t, func() bool {
		return s.Push(Fix{Latitude: 1, Longitude: 1}) == ErrNotTracking
	}, time.Second, 10*time.Millisecond)
}
