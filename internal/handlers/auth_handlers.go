package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/pkg/logger"
	"github.com/veritas25/fundbooth/pkg/session"
)

// Authenticate validates a (project name, password) pair and returns the
// project summary plus a freshly issued client-held session token.
func (h *Handlers) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req domain.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	summary, token, err := h.authService.Authenticate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same message for unknown project and wrong password.
			writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error(), "UNAUTHORIZED")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}

	encoded, err := session.Encode(token)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to encode session token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"project": summary,
		"session": token,
		"token":   encoded,
	})
}

// ListProjects returns public project summaries for the access form.
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.authService.ListProjects(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	if summaries == nil {
		summaries = []domain.ProjectSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": summaries})
}

// ValidateSession is the session guard: it admits a client to a project
// dashboard only while the presented token matches the requested project
// and is inside its validity window. Every failure is the same generic
// denial; which check failed is not leaked.
func (h *Handlers) ValidateSession(w http.ResponseWriter, r *http.Request) {
	requestedName, err := url.PathUnescape(chi.URLParam(r, "projectName"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "access denied", "UNAUTHORIZED")
		return
	}

	encoded := sessionToken(r)
	if encoded == "" {
		writeError(w, http.StatusUnauthorized, "access denied", "UNAUTHORIZED")
		return
	}

	token, err := session.Decode(encoded)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "access denied", "UNAUTHORIZED")
		return
	}

	if err := token.Validate(requestedName, time.Now()); err != nil {
		// An expired token is dead for any project; the client discards it.
		writeError(w, http.StatusUnauthorized, "access denied", "UNAUTHORIZED")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":      true,
		"project_id": token.ProjectID,
	})
}
