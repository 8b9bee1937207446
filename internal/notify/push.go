package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Result reports the outcome of a single push delivery attempt. Delivery is
// fire-and-forget: a failed attempt is recorded here, logged by the caller and
// never surfaced as an error.
type Result struct {
	Token     string
	Delivered bool
	Err       string
}

// Dispatcher sends a push notification to a single device token.
type Dispatcher interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) Result
}

// pushRequest is the JSON body the Expo-compatible gateway expects.
type pushRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushClient posts notifications to an Expo-compatible push gateway.
type PushClient struct {
	gatewayURL string
	httpClient *http.Client
}

// NewPushClient creates a dispatcher targeting the given gateway URL.
func NewPushClient(gatewayURL string) *PushClient {
	return &PushClient{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Send performs one outbound call. Transport errors and non-2xx responses are
// reported in the Result, never returned as an error; there are no retries.
func (c *PushClient) Send(ctx context.Context, token, title, body string, data map[string]string) Result {
	res := Result{Token: token}

	payload, err := json.Marshal(pushRequest{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		res.Err = fmt.Sprintf("marshal payload: %v", err)
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		res.Err = fmt.Sprintf("build request: %v", err)
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Err = fmt.Sprintf("send push: %v", err)
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = fmt.Sprintf("push gateway returned status %d", resp.StatusCode)
		return res
	}

	res.Delivered = true
	return res
}
