package usecases

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"card-admin.backend/internal/domain/entities"
	"card-admin.backend/pkg/logger"
	"card-admin.backend/pkg/metrics"
)

// BalanceEvent is the payload delivered to a key's webhook after a
// successful credit mutation.
type BalanceEvent struct {
	KeyID     uuid.UUID             `json:"keyId"`
	KeyValue  string                `json:"keyValue"`
	Action    entities.LedgerAction `json:"action"`
	Amount    int64                 `json:"amount"`
	Credits   int64                 `json:"credits"`
	Timestamp time.Time             `json:"timestamp"`
}

// WebhookNotifier delivers balance events for keys that opted in.
// Delivery is best-effort: failures are logged and never returned to the
// ledger caller.
type WebhookNotifier interface {
	Notify(ctx context.Context, key *entities.AccessKey, event *BalanceEvent)
}

// HTTPWebhookNotifier posts signed JSON balance events over HTTP
type HTTPWebhookNotifier struct {
	client *http.Client
}

// NewHTTPWebhookNotifier creates a notifier with the given timeout
func NewHTTPWebhookNotifier(timeout time.Duration) *HTTPWebhookNotifier {
	return &HTTPWebhookNotifier{
		client: &http.Client{Timeout: timeout},
	}
}

func hmacSha256Hex(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Notify posts the event to the key's webhook URL. The body is signed with
// HMAC-SHA256 of the key's webhook secret; receivers verify via the
// X-Webhook-Signature header.
func (n *HTTPWebhookNotifier) Notify(ctx context.Context, key *entities.AccessKey, event *BalanceEvent) {
	if !key.WebhookEnabled || !key.WebhookURL.Valid {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "webhook payload encoding failed", zap.Error(err))
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, key.WebhookURL.String, bytes.NewReader(body))
	if err != nil {
		logger.Error(ctx, "webhook request build failed", zap.Error(err))
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if key.WebhookSecret.Valid {
		req.Header.Set("X-Webhook-Signature", hmacSha256Hex(key.WebhookSecret.String, string(body)))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "webhook delivery failed", zap.Error(err))
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Warn(ctx, "webhook delivery rejected", zap.Int("status", resp.StatusCode))
		metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		return
	}
	metrics.WebhookDeliveries.WithLabelValues("ok").Inc()
}
