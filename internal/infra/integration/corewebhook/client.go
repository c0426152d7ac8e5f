package corewebhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
)

type Client struct {
	webhookURL string
	http       *http.Client
}

// NewClient takes the delivery target (the same-origin relay path) at
// construction time. An empty URL is allowed and short-circuits SendToCore.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// SendToCore POSTs the JSON-serialized partner to the configured relay.
// Every failure mode comes back through the Result, never as an error:
// missing config fails fast with no network I/O, non-2xx responses surface
// the body's error field, transport failures surface their message.
func (c *Client) SendToCore(ctx context.Context, p *entity.Partner) Result {
	if c.webhookURL == "" {
		return Result{Success: false, Error: "Webhook URL not configured"}
	}

	jsonBody, err := json.Marshal(p)
	if err != nil {
		return Result{Success: false, Error: failureMessage(err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return Result{Success: false, Error: failureMessage(err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Success: false, Error: failureMessage(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("Webhook delivery failed (status %d)", resp.StatusCode)
		var envelope relayResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return Result{Success: false, Error: msg}
	}

	return Result{Success: true}
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
