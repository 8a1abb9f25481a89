package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/pkg/logger"
)

func (h *Handlers) ListCallBooth(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	entries, err := h.callBoothService.List(r.Context(), projectID)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list call booth entries", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	if entries == nil {
		entries = []domain.CallBoothEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"callBooth": entries})
}

func (h *Handlers) CreateCallBoothEntry(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req domain.CreateCallBoothRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	entry, err := h.callBoothService.Create(r.Context(), projectID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"callBoothEntry": entry})
}

func (h *Handlers) UpdateCallBoothEntry(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	entryID := chi.URLParam(r, "entryId")

	var req domain.UpdateCallBoothRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	entry, err := h.callBoothService.Update(r.Context(), projectID, entryID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"callBoothEntry": entry})
}

func (h *Handlers) DeleteCallBoothEntry(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	entryID := chi.URLParam(r, "entryId")

	if err := h.callBoothService.Delete(r.Context(), projectID, entryID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		logger.ErrorContext(r.Context(), "Failed to delete call booth entry", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
