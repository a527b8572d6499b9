package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestPublisher(t *testing.T, bus Bus, retries int) (*ResilientPublisher, string) {
	t.Helper()
	path := t.TempDir() + "/deadletter.jsonl"
	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     retries,
		RetryDelay:     10 * time.Millisecond,
		DeadLetterPath: path,
	})
	require.NoError(t, err)
	return rp, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp, path := newTestPublisher(t, bus, 3)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: "test_event"}))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 1 }}
	rp, path := newTestPublisher(t, bus, 3)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: "test_event"}))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, path := newTestPublisher(t, bus, 2)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: "doomed"}))

	// Initial attempt plus two retries
	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		info, err := os.Stat(path)
		return err == nil && info.Size() > 0
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, Type("doomed"), entries[0].Event.Type)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	path := t.TempDir() + "/deadletter.jsonl"
	leaks := leaktest.NewGoroutineChecker(t)
	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     5,
		RetryDelay:     time.Hour,
		DeadLetterPath: path,
	})
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: "pending"}))
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, Type("pending"), entries[0].Event.Type)

	// Shutdown is idempotent
	assert.NoError(t, rp.Shutdown(context.Background()))
	leaks.Check(0)
}
