package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/services"
)

// TokenVerifier defines the interface that the auth service must implement.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// VerifyTokenTokener extracts the bearer token from the request.
type VerifyTokenTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// VerifyTokenResponse represents a successful verification response
// swagger:model VerifyTokenResponse
type VerifyTokenResponse struct {
	// Token owner
	User models.UserDB `json:"user"`

	// Success flag
	// example: true
	Success bool `json:"success"`

	// Success message
	// example: Token is valid
	Message string `json:"message"`
}

// VerifyTokenErrorResponse represents an error response for verification
// swagger:model VerifyTokenErrorResponse
type VerifyTokenErrorResponse struct {
	// Error message
	// example: Invalid token
	Message string `json:"message"`
}

// NewVerifyTokenHandler returns an HTTP handler that resolves the identity
// embedded in a session token.
// @Summary Verify session token
// @Description Resolves the user a bearer token belongs to. Fails if the token is invalid or the user no longer exists.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.VerifyTokenResponse "Token owner"
// @Failure 401 {object} handlers.VerifyTokenErrorResponse "Invalid token"
// @Router /verify-token [post]
// @Security BearerAuth
func NewVerifyTokenHandler(svc TokenVerifier, tokenGetter VerifyTokenTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VerifyTokenErrorResponse{
				Message: "Invalid token",
			})
			return
		}

		user, err := svc.Verify(ctx, tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(VerifyTokenErrorResponse{
					Message: "Invalid token",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyTokenErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyTokenResponse{
			User:    *user,
			Success: true,
			Message: "Token is valid",
		})
	}
}
