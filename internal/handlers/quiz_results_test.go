package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imraac/LMS-backend/internal/models"
)

func TestSaveQuizResultHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := &models.QuizResultDB{
		ID:             1,
		UserID:         3,
		Category:       "javascript",
		Score:          8,
		TotalQuestions: 10,
	}

	tests := []struct {
		name         string
		reqBody      QuizResultRequest
		mockSetup    func(m *MockQuizResultRecorder)
		expectedCode int
		rawBody      bool
	}{
		{
			name: "success",
			reqBody: QuizResultRequest{
				UserID:         3,
				Category:       "javascript",
				Score:          8,
				TotalQuestions: 10,
				Answers:        json.RawMessage(`{"1":"a","2":"c"}`),
			},
			mockSetup: func(m *MockQuizResultRecorder) {
				m.EXPECT().
					RecordResult(gomock.Any(), int64(3), "javascript", 8, 10, json.RawMessage(`{"1":"a","2":"c"}`)).
					Return(saved, nil)
			},
			expectedCode: 201,
		},
		{
			name: "save failure",
			reqBody: QuizResultRequest{
				UserID:   3,
				Category: "javascript",
			},
			mockSetup: func(m *MockQuizResultRecorder) {
				m.EXPECT().
					RecordResult(gomock.Any(), int64(3), "javascript", 0, 0, gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 400,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuizResultRecorder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSaveQuizResultHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/save-quiz-result", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/save-quiz-result", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp QuizResultResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Quiz result saved successfully!", resp.Message)
			}
		})
	}
}

func TestListQuizResultsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	results := []models.QuizResultDB{
		{ID: 1, UserID: 3, Category: "javascript", Score: 8, TotalQuestions: 10, Answers: `{"1":"a"}`},
		{ID: 2, UserID: 4, Category: "python", Score: 5, TotalQuestions: 10},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockQuizResultLister(ctrl)
		mockSvc.EXPECT().
			ListAllResults(gomock.Any()).
			Return(results, nil)

		handler := NewListQuizResultsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/get-all-quiz-results", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.QuizResultView
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "javascript", resp[0].Category)
	})

	t.Run("listing failure", func(t *testing.T) {
		mockSvc := NewMockQuizResultLister(ctrl)
		mockSvc.EXPECT().
			ListAllResults(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewListQuizResultsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/get-all-quiz-results", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
