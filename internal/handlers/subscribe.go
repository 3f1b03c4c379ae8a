package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/mpesa"
	"github.com/imraac/LMS-backend/internal/services"
)

// Subscriber defines the interface that the payment service must implement.
type Subscriber interface {
	Subscribe(ctx context.Context, userID int64, amount float64, phoneNumber string) (*models.PaymentDB, error)
}

// SubscribeRequest represents the JSON body for a subscription request
// swagger:model SubscribeRequest
type SubscribeRequest struct {
	// User ID
	// required: true
	// example: 1
	UserID int64 `json:"user_id"`

	// Amount to charge
	// required: true
	// example: 500
	Amount float64 `json:"amount"`

	// Phone number to prompt for payment
	// required: true
	// example: 254712345678
	PhoneNumber string `json:"phone_number"`
}

// SubscribeResponse represents a successful subscription response
// swagger:model SubscribeResponse
type SubscribeResponse struct {
	// Message
	// example: Payment initiated successfully, waiting for callback
	Message string `json:"message"`
}

// SubscribeErrorResponse represents an error response for subscription
// swagger:model SubscribeErrorResponse
type SubscribeErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewSubscribeHandler returns an HTTP handler for the subscription workflow.
// @Summary Subscribe and initiate payment
// @Description Creates a subscription and a payment for the user, then prompts the phone number to approve it via STK push. The payment stays initiated until the gateway callback arrives.
// @Tags payments
// @Accept json
// @Produce json
// @Param subscribeRequest body handlers.SubscribeRequest true "Subscription request"
// @Success 201 {object} handlers.SubscribeResponse "Payment initiated"
// @Failure 400 {object} handlers.SubscribeErrorResponse "Missing fields or gateway rejection"
// @Failure 404 {object} handlers.SubscribeErrorResponse "User not found"
// @Failure 500 {object} handlers.SubscribeErrorResponse "Gateway unreachable"
// @Router /subscribe [post]
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubscribeErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.UserID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubscribeErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		_, err := svc.Subscribe(r.Context(), req.UserID, req.Amount, req.PhoneNumber)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "User not found",
				})
			case errors.Is(err, services.ErrMissingAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "Amount is required",
				})
			case errors.Is(err, services.ErrMissingPhoneNumber):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "Phone number is required",
				})
			case errors.Is(err, services.ErrPaymentRejected):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "Failed to initiate payment",
				})
			case errors.Is(err, mpesa.ErrGatewayUnavailable):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "Failed to connect to M-Pesa API",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubscribeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubscribeResponse{
			Message: "Payment initiated successfully, waiting for callback",
		})
	}
}
