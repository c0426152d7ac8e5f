package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	appmiddleware "github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/http/middleware"
)

// RelayHandler forwards inbound webhook payloads to the real external
// target. The target URL is server-only configuration; the browser-facing
// delivery client only ever sees the relay path.
type RelayHandler struct {
	TargetURL string
	HTTP      *http.Client
}

func NewRelayHandler(targetURL string) *RelayHandler {
	return &RelayHandler{
		TargetURL: targetURL,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Handle is a passthrough: no schema is enforced on the payload. Every code
// path answers with the JSON envelope and an explicit status; the upstream
// status is embedded in the message, never propagated verbatim.
func (h *RelayHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.TargetURL == "" {
		appmiddleware.RecordWebhookRelay("unconfigured")
		writeErrorResponse(w, http.StatusInternalServerError, "CORE_WEBHOOK_URL is not configured.")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		appmiddleware.RecordWebhookRelay("error")
		writeErrorResponse(w, http.StatusInternalServerError, failureMessage(err))
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.TargetURL, bytes.NewReader(body))
	if err != nil {
		appmiddleware.RecordWebhookRelay("error")
		writeErrorResponse(w, http.StatusInternalServerError, failureMessage(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.HTTP.Do(req)
	if err != nil {
		appmiddleware.RecordWebhookRelay("error")
		writeErrorResponse(w, http.StatusBadGateway, failureMessage(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		appmiddleware.RecordWebhookRelay("rejected")
		writeErrorResponse(w, http.StatusBadGateway,
			fmt.Sprintf("Webhook returned %d: %s", resp.StatusCode, string(respBody)))
		return
	}

	appmiddleware.RecordWebhookRelay("success")
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
