package corewebhook

// Result is the value-level outcome of a delivery attempt. The client never
// returns a Go error past its boundary; callers inspect Success/Error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// relayResponse is the envelope the relay (or any failing endpoint) answers
// with. Only the error field matters here.
type relayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
