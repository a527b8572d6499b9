package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
)

func TestRequireCaller(t *testing.T) {
	tokens, err := auth.NewTokenService("test_jwt_secret_key_32_bytes_long!!", time.Minute)
	require.NoError(t, err)
	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	valid, _, err := tokens.Issue(alice)
	require.NoError(t, err)

	var seen common.Address
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		require.True(t, ok)
		seen = caller
		w.WriteHeader(http.StatusNoContent)
	})
	reject := func(w http.ResponseWriter, _ *http.Request, err error) {
		http.Error(w, err.Error(), http.StatusUnauthorized)
	}
	h := RequireCaller(tokens, reject)(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"Valid", "Bearer " + valid, http.StatusNoContent},
		{"LowercaseScheme", "bearer " + valid, http.StatusNoContent},
		{"Missing", "", http.StatusUnauthorized},
		{"WrongScheme", "Basic " + valid, http.StatusUnauthorized},
		{"EmptyToken", "Bearer ", http.StatusUnauthorized},
		{"Forged", "Bearer " + valid + "x", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = common.Address{}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quests/1/complete", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, alice, seen)
			}
		})
	}
}

func TestCallerFromContext_Empty(t *testing.T) {
	_, ok := CallerFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
