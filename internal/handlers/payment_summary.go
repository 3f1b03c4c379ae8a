package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
)

// PaymentSummarizer defines the interface that the payment service must implement.
type PaymentSummarizer interface {
	PaymentSummary(ctx context.Context) (float64, error)
}

// PaymentSummaryResponse represents the aggregate payment total
// swagger:model PaymentSummaryResponse
type PaymentSummaryResponse struct {
	// Total amount across all payments
	// example: 1500
	TotalPaid float64 `json:"total_paid"`
}

// NewPaymentSummaryHandler returns an HTTP handler reporting the payment total.
// @Summary Get payment summary
// @Description Returns the sum of amounts across all recorded payments.
// @Tags payments
// @Produce json
// @Success 200 {object} handlers.PaymentSummaryResponse "Payment summary"
// @Failure 500 {object} handlers.SubscribeErrorResponse "Internal server error"
// @Router /payment-summary [get]
func NewPaymentSummaryHandler(svc PaymentSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.PaymentSummary(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SubscribeErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PaymentSummaryResponse{TotalPaid: total})
	}
}
