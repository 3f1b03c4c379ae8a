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
	"github.com/imraac/LMS-backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		ID:       1,
		Username: "john",
		Email:    "john@example.com",
		Role:     "user",
	}

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedMsg  string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Username: "john",
				Email:    "john@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret", "").
					Return(user, "sometoken", nil)
			},
			expectedCode: 201,
			expectedMsg:  "User has been created successfully",
		},
		{
			name: "email already taken",
			reqBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass", "").
					Return(nil, "", services.ErrEmailAlreadyRegistered)
			},
			expectedCode: 422,
			expectedMsg:  "Email already taken",
		},
		{
			name: "malformed email",
			reqBody: RegisterRequest{
				Username: "bob",
				Email:    "not-an-email",
				Password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "not-an-email", "pass", "").
					Return(nil, "", services.ErrInvalidEmail)
			},
			expectedCode: 400,
			expectedMsg:  "Invalid email address",
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass", "").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedMsg:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedMsg:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp RegisterResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedMsg, resp.Message)
				assert.Equal(t, "sometoken", resp.AccessToken)
				assert.Equal(t, user.ID, resp.User.ID)
			} else {
				var resp RegisterErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}
