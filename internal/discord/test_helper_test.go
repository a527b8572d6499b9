package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedMessages records what the notifier sent to the Discord API
type capturedMessages struct {
	mu    sync.Mutex
	paths []string
	sent  []discordgo.MessageSend
}

func (c *capturedMessages) all() ([]string, []discordgo.MessageSend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...), append([]discordgo.MessageSend(nil), c.sent...)
}

// newTestNotifier returns a notifier whose session talks to an in-memory
// Discord API
func newTestNotifier(t *testing.T) (*Notifier, *capturedMessages) {
	t.Helper()
	n, err := NewNotifier("test-token", "chan-1")
	require.NoError(t, err)

	captured := &capturedMessages{}
	n.session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var msg discordgo.MessageSend
			if req.Body != nil {
				_ = json.NewDecoder(req.Body).Decode(&msg)
			}
			captured.mu.Lock()
			captured.paths = append(captured.paths, req.Method+" "+req.URL.Path)
			captured.sent = append(captured.sent, msg)
			captured.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(bytes.NewBufferString(`{"id":"1","channel_id":"chan-1"}`)),
				Request:    req,
			}, nil
		},
	}}
	return n, captured
}
