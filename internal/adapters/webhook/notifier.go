package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
)

// Ключи конверта, которые нельзя перекрыть полями из Body.
// Политика при коллизии: ключ конверта побеждает, поле из Body отбрасывается
// с предупреждением в логе (молчаливая перезапись прятала бы потерю данных,
// а отказ от всего уведомления превращал бы опечатку в потерянное событие).
var reservedEnvelopeKeys = map[string]struct{}{
	"event":     {},
	"entity":    {},
	"action":    {},
	"timestamp": {},
}

const defaultTimeout = 5 * time.Second

// Config - настройки доставки. URL читается из конфигурации один раз на старте;
// пустой URL полностью выключает доставку, не ломая приложение.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Notifier - реализация NotifierPort поверх исходящего HTTP POST.
// Контракт best-effort: одна попытка, без ретраев, без очереди. Любая ошибка
// доставки логируется и проглатывается - наружу Notify не возвращает ничего.
type Notifier struct {
	cfg        Config
	httpClient *http.Client
	logger     port.LoggerPort
}

// NewNotifier - конструктор.
func NewNotifier(cfg Config, baseLogger port.LoggerPort) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Notifier{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     baseLogger.WithFields(port.Fields{"component": "WebhookNotifier"}),
	}
}

// Enabled сообщает, настроена ли доставка.
func (n *Notifier) Enabled() bool {
	return n.cfg.URL != ""
}

// Notify отправляет событие во внешнюю автоматизацию.
// Метод никогда не возвращает ошибку вызывающему: запись в БД уже состоялась,
// уведомление - побочный эффект, который может быть потерян.
func (n *Notifier) Notify(ctx context.Context, event domain.NotificationEvent, payload domain.NotificationPayload) {
	logger := n.logger.WithFields(port.Fields{"event": string(event)})
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		logger = logger.WithFields(port.Fields{"trace_id": traceID})
	}

	if !n.Enabled() {
		logger.Warn("Webhook URL is not configured, notification dropped", nil)
		return
	}

	envelope := n.buildEnvelope(logger, event, payload)

	body, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("Failed to marshal notification envelope", err, nil)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.URL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build webhook request", err, nil)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to deliver notification, event is lost", err, port.Fields{"url": n.cfg.URL})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Webhook returned non-2xx status, event is lost", nil, port.Fields{
			"url":         n.cfg.URL,
			"status_code": resp.StatusCode,
		})
		return
	}

	logger.Info("Notification delivered", port.Fields{"status_code": resp.StatusCode})
}

// buildEnvelope собирает плоское исходящее сообщение:
// {event, entity, action, timestamp} + поля Body в корне, без вложенного "body".
func (n *Notifier) buildEnvelope(logger port.LoggerPort, event domain.NotificationEvent, payload domain.NotificationPayload) map[string]interface{} {
	entity := payload.Entity
	action := payload.Action

	if entity == "" || action == "" {
		parts, known := event.Parts()
		if !known {
			logger.Warn("Unknown notification event tag, entity/action left as provided", nil)
		}
		if entity == "" {
			entity = parts.Entity
		}
		if action == "" {
			action = parts.Action
		}
	}

	envelope := map[string]interface{}{
		"event":     string(event),
		"entity":    entity,
		"action":    action,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	for key, value := range payload.Body {
		if _, reserved := reservedEnvelopeKeys[key]; reserved {
			logger.Warn("Payload body field collides with envelope key, field dropped", port.Fields{"field": key})
			continue
		}
		envelope[key] = value
	}

	return envelope
}
