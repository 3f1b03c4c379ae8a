package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPaymentSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPaymentSummarizer(ctrl)
		mockSvc.EXPECT().
			PaymentSummary(gomock.Any()).
			Return(1500.0, nil)

		handler := NewPaymentSummaryHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/payment-summary", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp PaymentSummaryResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1500.0, resp.TotalPaid)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockPaymentSummarizer(ctrl)
		mockSvc.EXPECT().
			PaymentSummary(gomock.Any()).
			Return(0.0, errors.New("database failure"))

		handler := NewPaymentSummaryHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/payment-summary", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
