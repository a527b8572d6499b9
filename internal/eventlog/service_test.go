package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/event"
)

// MockPublisher is a mock implementation of event.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

var actor = common.HexToAddress("0x000000000000000000000000000000000000beef")

func TestRecorder_RecordAndPublish(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Unix(1_700_000_000, 0).UTC()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)

	rec := NewRecorder(tx, actor, now)
	require.NoError(t, rec.Record(ctx, event.NewPlayerRegisteredEvent(actor, now)))
	require.NoError(t, rec.Record(ctx, event.NewPauseEvent(actor, true)))
	require.NoError(t, tx.Commit(ctx))

	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Actor() == actor.Hex()
	})).Return(errors.New("subscriber failed")).Once()
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	rec.Publish(ctx, pub)
	pub.AssertNumberOfCalls(t, "Publish", 2)
	assert.Empty(t, rec.Events())

	records, err := NewService(store).List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "player.registered", records[0].Type)
	assert.Equal(t, actor.Hex(), records[0].Actor)
	assert.Equal(t, now, records[0].CreatedAt)

	var payload event.PlayerRegisteredPayloadV1
	require.NoError(t, json.Unmarshal(records[0].Payload, &payload))
	assert.Equal(t, actor.Hex(), payload.Player)
	assert.Equal(t, now.Unix(), payload.Timestamp)
}

func TestRecorder_RollbackDiscardsRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	rec := NewRecorder(tx, actor, time.Now())
	require.NoError(t, rec.Record(ctx, event.NewPauseEvent(actor, false)))
	require.NoError(t, tx.Rollback(ctx))

	records, err := NewService(store).List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_ListClampsLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	rec := NewRecorder(tx, actor, time.Now())
	for i := 0; i < 3; i++ {
		require.NoError(t, rec.Record(ctx, event.NewPauseEvent(actor, i%2 == 0)))
	}
	require.NoError(t, tx.Commit(ctx))

	svc := NewService(store)
	records, err := svc.List(ctx, 1, MaxPageSize+50)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].Seq)
}
