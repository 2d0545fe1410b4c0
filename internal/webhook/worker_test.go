package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/igloo_sync/internal/config"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, url string) *WebhookWorker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, QueueKey("me"), logger, cfg)
}

func testEvent() (WebhookEvent, string) {
	event := WebhookEvent{
		FamilyID: "POLAR-1337",
		Source:   SourceLocal,
		Report: models.ActivityReport{
			ID:      "r1",
			Type:    models.ReportAutomation,
			Message: "YOU ENTERED SCHOOL",
		},
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestProcessWebhookEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEvent()

	var gotBody, gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	require.True(t, worker.processWebhookEvent(context.Background(), event, payload))

	assert.JSONEq(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesOnServerError(t *testing.T) {
	event, payload := testEvent()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	assert.True(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_NoURLConfigured(t *testing.T) {
	event, payload := testEvent()
	worker := newTestWorker(t, "")
	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известное значение HMAC-SHA256("data", "key")
	assert.Equal(t,
		"5031fe3d989c6d1537a013fa6e739da23463fdaec3b70137d828e36ace221bd0",
		generateHMACSHA256("data", "key"))
}

func TestQueueKey(t *testing.T) {
	assert.Equal(t, "webhook_events:member-1", QueueKey("member-1"))
}
