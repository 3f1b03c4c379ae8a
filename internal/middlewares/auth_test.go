package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(m *MockTokener)
		expectedCode int
		nextCalled   bool
	}{
		{
			name: "valid token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().Validate(gomock.Any(), "sometoken").Return(nil)
			},
			expectedCode: http.StatusOK,
			nextCalled:   true,
		},
		{
			name: "missing token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setupMock: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("broken", nil)
				m.EXPECT().Validate(gomock.Any(), "broken").Return(errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockTokener(ctrl)
			tt.setupMock(tokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			w := httptest.NewRecorder()

			AuthMiddleware(tokener)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}
