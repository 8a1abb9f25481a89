package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/pkg/logger"
)

// Income

func (h *Handlers) ListIncome(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	items, err := h.financeService.ListIncome(r.Context(), projectID)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list income", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	if items == nil {
		items = []domain.Income{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"income": items})
}

func (h *Handlers) CreateIncome(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req domain.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	income, err := h.financeService.CreateIncome(r.Context(), projectID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"income": income})
}

func (h *Handlers) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	incomeID := chi.URLParam(r, "incomeId")

	var req domain.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	income, err := h.financeService.UpdateIncome(r.Context(), projectID, incomeID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"income": income})
}

func (h *Handlers) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	incomeID := chi.URLParam(r, "incomeId")

	if err := h.financeService.DeleteIncome(r.Context(), projectID, incomeID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		logger.ErrorContext(r.Context(), "Failed to delete income", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Expenses

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	items, err := h.financeService.ListExpenses(r.Context(), projectID)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	if items == nil {
		items = []domain.Expense{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"expenses": items})
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req domain.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	expense, err := h.financeService.CreateExpense(r.Context(), projectID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"expense": expense})
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	expenseID := chi.URLParam(r, "expenseId")

	var req domain.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	expense, err := h.financeService.UpdateExpense(r.Context(), projectID, expenseID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"expense": expense})
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	expenseID := chi.URLParam(r, "expenseId")

	if err := h.financeService.DeleteExpense(r.Context(), projectID, expenseID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", "NOT_FOUND")
			return
		}
		logger.ErrorContext(r.Context(), "Failed to delete expense", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Stats

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	stats, err := h.financeService.Stats(r.Context(), projectID)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to compute stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}
