package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veritas25/fundbooth/internal/domain"
)

// CreateOrder creates a provider-side payment order for a contribution.
// The provider order object is returned to the caller verbatim.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, "Invalid amount", "INVALID_AMOUNT")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create order", "ORDER_CREATION_FAILED")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// VerifyPayment authenticates a provider callback and stores the
// contribution as an income record under the fixed contribution project.
func (h *Handlers) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	receipt, err := h.paymentService.VerifyPayment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSignatureMismatch):
			writeError(w, http.StatusBadRequest, "Payment verification failed", "PAYMENT_VERIFICATION_FAILED")
		case errors.Is(err, domain.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "Contribution project not found", "NOT_FOUND")
		case errors.Is(err, domain.ErrPersistence):
			writeError(w, http.StatusInternalServerError, "Failed to store contribution record", "PERSISTENCE_FAILED")
		default:
			writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"receipt": receipt,
	})
}
