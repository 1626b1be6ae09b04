package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hearth/internal/core"
	"hearth/internal/services"
	"hearth/internal/storage"
)

type Server struct {
	http.Server
	repo        *storage.SQLiteRepository
	summaries   *services.SummaryService
	households  *services.HouseholdService
	defaultCur  core.Currency
	rateLimiter *rateLimiter

	// LRU cache for the read-mostly currency-rate table. Summaries are
	// recomputed on every read and never cached.
	rateCache *lruCache[[]rateResponse]

	// Cache cleanup management
	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, repo *storage.SQLiteRepository, summaries *services.SummaryService, households *services.HouseholdService, defaultCur core.Currency) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		repo:             repo,
		summaries:        summaries,
		households:       households,
		defaultCur:       defaultCur.OrDefault(),
		rateLimiter:      newRateLimiter(),
		rateCache:        newLRUCache[[]rateResponse](4, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	// Start periodic cache cleanup
	go s.startCacheCleanup()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("POST /households", s.wrap(s.handleCreateHousehold))
	mux.HandleFunc("GET /households", s.wrap(s.handleListHouseholds))
	mux.HandleFunc("GET /households/{id}", s.wrap(s.handleGetHousehold))
	mux.HandleFunc("GET /households/{id}/members", s.wrap(s.handleListMembers))
	mux.HandleFunc("DELETE /households/{id}/members/{userID}", s.wrap(s.handleRemoveMember))

	mux.HandleFunc("POST /households/{id}/invitations", s.wrap(s.handleInvite))
	mux.HandleFunc("GET /invitations", s.wrap(s.handleListInvitations))
	mux.HandleFunc("POST /invitations/{token}/accept", s.wrap(s.handleAcceptInvitation))
	mux.HandleFunc("POST /invitations/{token}/reject", s.wrap(s.handleRejectInvitation))

	s.registerRecordRoutes(mux)

	mux.HandleFunc("GET /households/{id}/summary", s.wrap(s.handleSummary))
	mux.HandleFunc("GET /households/{id}/snapshots", s.wrap(s.handleListSnapshots))
	mux.HandleFunc("POST /households/{id}/refresh", s.wrap(s.handleRefresh))

	mux.HandleFunc("GET /rates", s.wrap(s.handleListRates))
	mux.HandleFunc("PUT /rates", s.wrap(s.handleUpsertRate))
	mux.HandleFunc("DELETE /rates/{from}/{to}", s.wrap(s.handleDeleteRate))

	return s
}

// startCacheCleanup runs periodic cleanup for the rate cache
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.rateCache.CleanExpired(); cleaned > 0 {
				slog.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// wrap adds security headers, rate limiting, and request logging to handlers
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Forwarded headers are client-controlled, so they are used for
		// logging only; the rate limiter keys on the socket address.
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit mutations only; reads are cheap.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(r.RemoteAddr) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
