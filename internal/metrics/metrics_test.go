package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
)

func TestWholeTokens(t *testing.T) {
	assert.InDelta(t, 10.0, wholeTokens(domain.Tokens(10).String()), 1e-9)
	assert.InDelta(t, 0.5, wholeTokens("500000000000000000"), 1e-9)
	assert.Equal(t, 0.0, wholeTokens("not-a-number"))
}

func TestEventMetricsCollector_HandleEvent(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	winner := common.HexToAddress("0x01")
	loser := common.HexToAddress("0x02")

	beforeMatches := testutil.ToFloat64(PvPMatches)
	beforeMinted := testutil.ToFloat64(RewardsMinted.WithLabelValues(SourcePvP))
	beforePublished := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.PvPResultRecorded)))

	require.NoError(t, bus.Publish(ctx, event.NewPvPResultEvent(winner, loser, domain.Tokens(50), domain.PvPWinXP)))

	assert.Equal(t, beforeMatches+1, testutil.ToFloat64(PvPMatches))
	assert.InDelta(t, beforeMinted+50, testutil.ToFloat64(RewardsMinted.WithLabelValues(SourcePvP)), 1e-9)
	assert.Equal(t, beforePublished+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.PvPResultRecorded))))
}

func TestEventMetricsCollector_PauseGauge(t *testing.T) {
	c := NewEventMetricsCollector()
	ctx := context.Background()
	by := common.HexToAddress("0x03")

	require.NoError(t, c.HandleEvent(ctx, event.NewPauseEvent(by, true)))
	assert.Equal(t, 1.0, testutil.ToFloat64(SystemPaused))

	require.NoError(t, c.HandleEvent(ctx, event.NewPauseEvent(by, false)))
	assert.Equal(t, 0.0, testutil.ToFloat64(SystemPaused))
}

func TestEventMetricsCollector_IgnoresUndecodablePayload(t *testing.T) {
	c := NewEventMetricsCollector()
	evt := event.Event{Type: event.RewardsClaimed, Payload: make(chan int)}
	assert.NoError(t, c.HandleEvent(context.Background(), evt))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{address}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{address}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/0xabc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{address}", "418")))
}
