package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

// RelayPublisher accepts outbound automation events. Publishing never blocks
// the caller and never reports delivery failure back to it; delivery is
// best-effort by contract.
type RelayPublisher interface {
	Publish(event models.RelayEvent)
}

// relaySecretHeader carries the shared secret the automation endpoint checks.
const relaySecretHeader = "X-Webhook-Secret"

// NotificationRelay forwards events to the automation webhook from a
// background worker, so request handlers are decoupled from delivery and
// shutdown drains deterministically.
type NotificationRelay struct {
	url      string
	secret   string
	events   chan models.RelayEvent
	pool     *httpclient.Pool
	logger   *zap.Logger
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewNotificationRelay creates the relay and starts its worker. An empty url
// disables delivery; events are then dropped with a warning, which signals a
// configuration gap rather than a runtime error.
func NewNotificationRelay(url, secret string) *NotificationRelay {
	r := &NotificationRelay{
		url:    url,
		secret: secret,
		events: make(chan models.RelayEvent, 256),
		pool:   httpclient.GetGlobalPool(),
		logger: observability.Logger(),
	}

	if r.url == "" {
		r.logger.Warn("relay URL not configured; automation events will be dropped")
	} else if r.secret == "" {
		r.logger.Warn("relay URL configured without a shared secret")
	}

	r.wg.Add(1)
	go r.worker()

	return r
}

// Publish enqueues an event for delivery. A full queue drops the event with a
// warning; callers are never blocked.
func (r *NotificationRelay) Publish(event models.RelayEvent) {
	select {
	case r.events <- event:
	default:
		observability.RelayEvents.WithLabelValues(event.Type, "dropped").Inc()
		r.logger.Warn("relay queue full, dropping event", zap.String("type", event.Type))
	}
}

// Close stops accepting events and waits for the worker to drain the queue.
func (r *NotificationRelay) Close() {
	r.stopOnce.Do(func() {
		close(r.events)
	})
	r.wg.Wait()
}

func (r *NotificationRelay) worker() {
	defer r.wg.Done()

	for event := range r.events {
		if r.url == "" {
			observability.RelayEvents.WithLabelValues(event.Type, "dropped").Inc()
			continue
		}
		r.send(event)
	}
}

func (r *NotificationRelay) send(event models.RelayEvent) {
	logger := r.logger.With(zap.String("type", event.Type))

	body := make(map[string]interface{}, len(event.Body)+1)
	for k, v := range event.Body {
		body[k] = v
	}
	body["type"] = event.Type

	jsonBody, err := json.Marshal(body)
	if err != nil {
		observability.RelayEvents.WithLabelValues(event.Type, "error").Inc()
		logger.Error("failed to marshal relay event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		observability.RelayEvents.WithLabelValues(event.Type, "error").Inc()
		logger.Error("failed to create relay request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if r.secret != "" {
		req.Header.Set(relaySecretHeader, r.secret)
	}

	client := r.pool.Get()
	defer r.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		observability.RelayEvents.WithLabelValues(event.Type, "error").Inc()
		logger.Warn("relay delivery failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		observability.RelayEvents.WithLabelValues(event.Type, "rejected").Inc()
		logger.Warn("relay endpoint rejected event",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response", respBody))
		return
	}

	observability.RelayEvents.WithLabelValues(event.Type, "delivered").Inc()
	logger.Debug("relay event delivered")
}
