package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/eventlog"
	"github.com/osse101/LithosProtocol_Go/internal/game"
	"github.com/osse101/LithosProtocol_Go/internal/handler"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/metrics"
	"github.com/osse101/LithosProtocol_Go/internal/middleware"
	"github.com/osse101/LithosProtocol_Go/internal/sse"
	"github.com/osse101/LithosProtocol_Go/internal/staking"
)

// Config holds the HTTP listener settings
type Config struct {
	Port               int
	APIKey             string
	TrustedProxies     []string
	RateLimitPerMinute int
	MaxBodyBytes       int64
}

// Dependencies are the services the routes are served from
type Dependencies struct {
	Store   handler.Pinger
	Game    game.Service
	Staking staking.Service
	Events  eventlog.Service
	Tokens  *auth.TokenService
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates the HTTP server and its routes
func NewServer(cfg Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes.
//
// Streaming routes skip the logging, metrics and compression wrappers so the
// SSE flusher and websocket hijacker reach the underlying connection.
func NewRouter(cfg Config, deps Dependencies) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	detector := NewSuspiciousActivityDetector()
	ipKey := ClientIPKey(cfg.TrustedProxies)
	requireCaller := middleware.RequireCaller(deps.Tokens, handler.RespondAuthError)
	callerLimit := RateLimitMiddleware(NewRateLimiter(cfg.RateLimitPerMinute), CallerKey(ipKey), detector)

	gameHandler := handler.NewGameHandler(deps.Game)
	stakingHandler := handler.NewStakingHandler(deps.Staking)
	authHandler := handler.NewAuthHandler(deps.Tokens)
	eventsHandler := handler.NewEventsHandler(deps.Events)

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimitPerMinute), ipKey, detector))

	r.Get("/api/v1/events/stream", sse.Handler(deps.Hub))
	r.Get("/api/v1/events/ws", sse.WebSocketHandler(deps.Hub))

	r.Group(func(r chi.Router) {
		r.Use(RequestSizeLimitMiddleware(maxBody))
		r.Use(metrics.Middleware)
		r.Use(loggingMiddleware)
		r.Use(gzipMiddleware)

		// Health check routes (unversioned)
		r.Get("/healthz", handler.HandleHealthz())
		r.Get("/readyz", handler.HandleReadyz(deps.Store))
		r.Get("/version", handler.HandleVersion())
		r.Handle("/metrics", promhttp.Handler())
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/auth/token", authHandler.IssueToken)
			r.Get("/events", eventsHandler.ListEvents)
			r.Get("/status", gameHandler.GetStatus)
			r.Get("/config", gameHandler.GetConfig)
			r.Get("/roles/{address}", gameHandler.GetRoles)

			r.Get("/players/{address}", gameHandler.GetPlayer)
			r.Get("/players/{address}/assets", gameHandler.GetPlayerAssets)
			r.Get("/players/{address}/balance", gameHandler.GetBalance)
			r.Get("/quests", gameHandler.ListQuests)
			r.Get("/quests/{id}", gameHandler.GetQuest)
			r.Get("/resources", gameHandler.ListResourceTypes)
			r.Get("/resources/{id}/balance/{address}", gameHandler.GetResourceBalance)

			r.Get("/pools", stakingHandler.ListPools)
			r.Get("/pools/{id}", stakingHandler.GetPool)
			r.Get("/pools/{id}/pending/{address}", stakingHandler.GetPendingRewards)
			r.Get("/pools/{id}/stakes/{address}", stakingHandler.GetUserStake)
			r.Get("/pools/{id}/nfts/{address}", stakingHandler.GetUserStakedNFTs)

			// Mutations act as the bearer token's account
			r.Group(func(r chi.Router) {
				r.Use(requireCaller)
				r.Use(callerLimit)

				r.Post("/players/register", gameHandler.RegisterPlayer)

				r.Post("/quests", gameHandler.CreateQuest)
				r.Post("/quests/{id}/status", gameHandler.SetQuestStatus)
				r.Post("/quests/{id}/complete", gameHandler.CompleteQuest)

				r.Post("/pvp/results", gameHandler.RecordPvPResult)
				r.Post("/tournaments/{id}/enter", gameHandler.EnterTournament)
				r.Post("/leaderboard/rewards", gameHandler.DistributeLeaderboardRewards)

				r.Post("/items/craft", gameHandler.CraftItem)
				r.Post("/items/{id}/repair", gameHandler.RepairItem)
				r.Post("/items/{id}/level-up", gameHandler.LevelUpAsset)

				r.Post("/resources", gameHandler.CreateResourceType)
				r.Post("/resources/mint", gameHandler.MintResources)
				r.Post("/resources/{id}/status", gameHandler.SetResourceTypeStatus)

				r.Put("/config", gameHandler.UpdateConfig)

				r.Post("/pools", stakingHandler.CreatePool)
				r.Post("/pools/{id}/status", stakingHandler.SetPoolStatus)
				r.Post("/pools/{id}/stake", stakingHandler.Stake)
				r.Post("/pools/{id}/stake-nft", stakingHandler.StakeNFT)
				r.Post("/pools/{id}/unstake", stakingHandler.Unstake)
				r.Post("/pools/{id}/unstake-nft", stakingHandler.UnstakeNFT)
				r.Post("/pools/{id}/claim", stakingHandler.ClaimRewards)

				r.Route("/admin", func(r chi.Router) {
					r.Post("/pause", gameHandler.Pause)
					r.Post("/unpause", gameHandler.Unpause)
					r.Post("/roles/grant", gameHandler.GrantRole)
					r.Post("/roles/revoke", gameHandler.RevokeRole)
				})
			})
		})
	})

	return r
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
