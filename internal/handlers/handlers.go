package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/veritas25/fundbooth/internal/http/response"
	"github.com/veritas25/fundbooth/internal/repository"
	"github.com/veritas25/fundbooth/internal/service"
	"github.com/veritas25/fundbooth/pkg/config"
	"github.com/veritas25/fundbooth/pkg/logger"
)

type Handlers struct {
	authService      service.AuthService
	paymentService   service.PaymentService
	financeService   service.FinanceService
	callBoothService service.CallBoothService
	rateLimitRepo    repository.RateLimitRepository
	config           *config.Config
}

func New(
	authService service.AuthService,
	paymentService service.PaymentService,
	financeService service.FinanceService,
	callBoothService service.CallBoothService,
	rateLimitRepo repository.RateLimitRepository,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:      authService,
		paymentService:   paymentService,
		financeService:   financeService,
		callBoothService: callBoothService,
		rateLimitRepo:    rateLimitRepo,
		config:           config,
	}
}

// AuthRateLimit limits authentication attempts per client IP.
func (h *Handlers) AuthRateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.rateLimitRepo == nil {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := getClientIP(r)
			key := "authenticate:" + clientIP

			allowed, err := h.rateLimitRepo.CheckRateLimit(r.Context(), key, 10, time.Minute)
			if err != nil {
				logger.ErrorContext(r.Context(), "Rate limit check failed", "error", err)
				// Allow request on error (fail open)
			} else if !allowed {
				writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", "RATE_LIMIT_EXCEEDED")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Helper functions

func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func sessionToken(r *http.Request) string {
	if tok := r.Header.Get("X-Project-Session"); tok != "" {
		return tok
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	response.WriteError(w, statusCode, message, code)
}
