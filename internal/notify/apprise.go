package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/wordull/internal/logger"
)

// Notifier sends a best-effort notification to an opaque target. Callers
// decide whether a failure matters; implementations never retry.
type Notifier interface {
	Send(ctx context.Context, target, title, body string) error
}

// AppriseClient delivers notifications through an Apprise API gateway. The
// target is an Apprise URL (tgram://..., mailto://..., etc.) forwarded to the
// gateway's stateless notify endpoint.
type AppriseClient struct {
	httpClient *http.Client
	apiURL     string
	log        *logger.Logger
}

func NewAppriseClient(apiURL string) *AppriseClient {
	return &AppriseClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiURL:     strings.TrimRight(apiURL, "/"),
		log:        logger.Default().WithPrefix("notify"),
	}
}

var _ Notifier = (*AppriseClient)(nil)

type notifyPayload struct {
	URLs  string `json:"urls"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *AppriseClient) Send(ctx context.Context, target, title, body string) error {
	log := logger.FromContext(ctx).WithPrefix("notify")

	payload, err := json.Marshal(notifyPayload{URLs: target, Title: title, Body: body})
	if err != nil {
		return err
	}

	url := c.apiURL + "/notify"
	log.Debug("sending notification via %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create notify request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to send notification: %v", err)
		return err
	}
	defer resp.Body.Close()

	log.Debug("notify response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("notify request failed: status=%d, body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("notify status %d: %s", resp.StatusCode, string(respBody))
	}

	log.Info("notification sent")
	return nil
}
