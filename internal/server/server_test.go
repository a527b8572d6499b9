package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/handler"
	"github.com/osse101/LithosProtocol_Go/internal/sse"
	"github.com/osse101/LithosProtocol_Go/mocks"
)

const testAPIKey = "test-api-key"

type routerFixture struct {
	router  http.Handler
	game    *mocks.MockGameService
	staking *mocks.MockStakingService
	events  *mocks.MockEventLogService
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	tokens, err := auth.NewTokenService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	f := &routerFixture{
		game:    mocks.NewMockGameService(t),
		staking: mocks.NewMockStakingService(t),
		events:  mocks.NewMockEventLogService(t),
	}
	f.router = NewRouter(Config{APIKey: testAPIKey, RateLimitPerMinute: 1000}, Dependencies{
		Store:   stubPinger{},
		Game:    f.game,
		Staking: f.staking,
		Events:  f.events,
		Tokens:  tokens,
		Hub:     sse.NewHub(),
	})
	return f
}

func (f *routerFixture) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicAndKeyedRoutes(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = f.do(http.MethodGet, "/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/v1/quests", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.game.On("ListQuests", mock.Anything, false).Return([]domain.Quest{}, nil).Once()
	w = f.do(http.MethodGet, "/api/v1/quests", nil, map[string]string{HeaderAPIKey: testAPIKey})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(HeaderRateLimitLimit))
}

func TestRouter_MutationsNeedBearerToken(t *testing.T) {
	f := newRouterFixture(t)
	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	keyed := map[string]string{HeaderAPIKey: testAPIKey}

	w := f.do(http.MethodPost, "/api/v1/quests/1/complete", nil, keyed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/api/v1/quests/1/complete", nil, map[string]string{
		HeaderAPIKey:        testAPIKey,
		HeaderAuthorization: "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/api/v1/auth/token", handler.TokenRequest{Address: alice.Hex()}, keyed)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok handler.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	f.game.On("CompleteQuest", mock.Anything, alice, int64(1)).
		Return(&domain.QuestCompletion{Player: alice, QuestID: 1, Reward: domain.Tokens(1)}, nil).Once()

	w = f.do(http.MethodPost, "/api/v1/quests/1/complete", nil, map[string]string{
		HeaderAPIKey:        testAPIKey,
		HeaderAuthorization: "Bearer " + tok.Token,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)
	w := f.do(http.MethodGet, "/api/v1/nope", nil, map[string]string{HeaderAPIKey: testAPIKey})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
