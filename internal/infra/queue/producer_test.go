package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSignedPayloadWireFormat pins the JSON keys the worker and any external
// consumer rely on.
func TestSignedPayloadWireFormat(t *testing.T) {
	payload := SignedPayload{
		PartnerID:    "partner-1",
		Name:         "Acme Outdoors",
		ContactName:  "Sam Vega",
		ContactEmail: "sam@acme.example",
		PartnerTier:  "Preferred",
		SignedAt:     time.Date(2026, 8, 20, 15, 4, 0, 0, time.UTC),
		Origin:       "PARTNER_UPDATE",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var data map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &data))

	for _, field := range []string{
		"partner_id", "name", "contact_name", "contact_email",
		"partner_tier", "signed_at", "origin",
	} {
		assert.Contains(t, data, field, "field %s is missing", field)
	}

	var received SignedPayload
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, payload, received)
}
