package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/mpesa"
	"github.com/imraac/LMS-backend/internal/services"
)

// CallbackProcessor defines the interface that the payment service must implement.
type CallbackProcessor interface {
	HandleCallback(ctx context.Context, callback *mpesa.StkCallback) error
}

// CallbackResponse represents a callback acknowledgement
// swagger:model CallbackResponse
type CallbackResponse struct {
	// Message
	// example: Payment confirmed
	Message string `json:"message"`
}

// CallbackErrorResponse represents an error response for the callback route
// swagger:model CallbackErrorResponse
type CallbackErrorResponse struct {
	// Error message
	// example: Payment not found
	Error string `json:"error"`
}

// NewCallbackHandler returns an HTTP handler for gateway payment callbacks.
// Requests must carry the shared secret in the X-Callback-Token header.
// @Summary Process payment callback
// @Description Receives the asynchronous payment result from the gateway and finalizes the matching payment record.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Callback-Token header string true "Shared callback secret"
// @Param callback body mpesa.CallbackPayload true "Gateway callback payload"
// @Success 200 {object} handlers.CallbackResponse "Payment confirmed"
// @Failure 400 {object} handlers.CallbackErrorResponse "Payment failed"
// @Failure 401 {object} handlers.CallbackErrorResponse "Invalid callback token"
// @Failure 404 {object} handlers.CallbackErrorResponse "Payment not found"
// @Failure 500 {object} handlers.CallbackErrorResponse "Internal server error"
// @Router /callback [post]
func NewCallbackHandler(svc CallbackProcessor, callbackToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// An unset secret must not degrade into matching an empty header.
		if callbackToken == "" {
			logger.Log.Warnw("callback rejected, no callback token configured")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CallbackErrorResponse{
				Error: "Invalid callback token",
			})
			return
		}

		token := r.Header.Get("X-Callback-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(callbackToken)) != 1 {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CallbackErrorResponse{
				Error: "Invalid callback token",
			})
			return
		}

		var payload mpesa.CallbackPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CallbackErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		err := svc.HandleCallback(r.Context(), &payload.Body.StkCallback)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPaymentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CallbackErrorResponse{
					Error: "Payment not found",
				})
			case errors.Is(err, services.ErrPaymentDeclined):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CallbackErrorResponse{
					Error: "Payment failed",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CallbackErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CallbackResponse{
			Message: "Payment confirmed",
		})
	}
}
