package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (l *testLogger) Info(msg string, fields port.Fields)             {}
func (l *testLogger) Warn(msg string, fields port.Fields)             {}
func (l *testLogger) Error(msg string, err error, fields port.Fields) {}
func (l *testLogger) Debug(msg string, fields port.Fields)            {}
func (l *testLogger) WithFields(fields port.Fields) port.LoggerPort   { return l }

func captureEnvelope(t *testing.T, notify func(url string)) map[string]interface{} {
	t.Helper()

	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	notify(srv.URL)
	require.NotNil(t, captured, "webhook endpoint was not called")
	return captured
}

func TestNotifyFlattensBodyIntoEnvelope(t *testing.T) {
	envelope := captureEnvelope(t, func(url string) {
		n := NewNotifier(Config{URL: url}, &testLogger{})
		n.Notify(context.Background(), domain.EventPlayerCreated, domain.NotificationPayload{
			Body: map[string]interface{}{
				"name":  "John Smith",
				"email": "john@example.com",
				"team":  "U-12",
			},
		})
	})

	assert.Equal(t, "PLAYER_CREATED", envelope["event"])
	assert.Equal(t, "PLAYER", envelope["entity"])
	assert.Equal(t, "CREATED", envelope["action"])
	assert.Equal(t, "John Smith", envelope["name"])
	assert.Equal(t, "john@example.com", envelope["email"])
	assert.Equal(t, "U-12", envelope["team"])

	// Поля тела лежат в корне, вложенного объекта "body" быть не должно.
	assert.NotContains(t, envelope, "body")
}

func TestNotifyTimestampIsRFC3339(t *testing.T) {
	envelope := captureEnvelope(t, func(url string) {
		n := NewNotifier(Config{URL: url}, &testLogger{})
		n.Notify(context.Background(), domain.EventTeamCreated, domain.NotificationPayload{})
	})

	raw, ok := envelope["timestamp"].(string)
	require.True(t, ok, "timestamp must be a string")

	ts, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestNotifyEnvelopeKeysWinOnCollision(t *testing.T) {
	envelope := captureEnvelope(t, func(url string) {
		n := NewNotifier(Config{URL: url}, &testLogger{})
		n.Notify(context.Background(), domain.EventCoachCreated, domain.NotificationPayload{
			Body: map[string]interface{}{
				"event": "SPOOFED",
				"name":  "Jane Doe",
			},
		})
	})

	assert.Equal(t, "COACH_CREATED", envelope["event"])
	assert.Equal(t, "Jane Doe", envelope["name"])
}

func TestNotifyPayloadOverridesEntityAndAction(t *testing.T) {
	envelope := captureEnvelope(t, func(url string) {
		n := NewNotifier(Config{URL: url}, &testLogger{})
		n.Notify(context.Background(), domain.EventCoachCreated, domain.NotificationPayload{
			Entity: "STAFF",
			Action: "ONBOARDED",
		})
	})

	assert.Equal(t, "STAFF", envelope["entity"])
	assert.Equal(t, "ONBOARDED", envelope["action"])
}

func TestNotifyDisabledWithoutURL(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	n := NewNotifier(Config{}, &testLogger{})
	require.False(t, n.Enabled())

	n.Notify(context.Background(), domain.EventDrillCreated, domain.NotificationPayload{})

	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestNotifySwallowsDeliveryFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	failingURL := srv.URL
	srv.Close() // соединение будет отклоняться

	n := NewNotifier(Config{URL: failingURL, Timeout: time.Second}, &testLogger{})

	// Недоступный endpoint не должен ронять вызывающего.
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.EventHomeworkAssigned, domain.NotificationPayload{})
	})
}

func TestNotifySwallowsNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(Config{URL: srv.URL}, &testLogger{})

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.EventCoachDeleted, domain.NotificationPayload{})
	})
}
