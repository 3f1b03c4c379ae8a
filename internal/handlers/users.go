package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// UserLister defines the interface that the auth service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UsersResponse represents the user listing response
// swagger:model UsersResponse
type UsersResponse struct {
	// Number of users
	// example: 2
	Count int `json:"count"`

	// All registered users
	Users []models.UserDB `json:"users"`
}

// UsersErrorResponse represents an error response for the user listing
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// example: Internal server error
	Message string `json:"message"`
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns every registered user with a count
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{
			Count: len(users),
			Users: users,
		})
	}
}
