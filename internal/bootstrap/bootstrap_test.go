package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/config"
	"github.com/osse101/LithosProtocol_Go/internal/event"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	require.Len(t, logs, LogFileRetentionCount)
	assert.Equal(t, "session_2024-01-04_00-00-00.log", logs[0])
	assert.FileExists(t, filepath.Join(dir, "event_deadletter.jsonl"))
}

func TestInitializeEventSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")
	cfg := &config.Config{EventDeadLetterPath: path}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	got := make(chan event.Type, 1)
	publisher.Subscribe(event.SystemPaused, func(_ context.Context, evt event.Event) error {
		got <- evt.Type
		return nil
	})
	require.NoError(t, bus.Publish(context.Background(), event.Event{Version: "1.0", Type: event.SystemPaused}))

	assert.Equal(t, event.SystemPaused, <-got)
	assert.DirExists(t, filepath.Dir(path))
}
