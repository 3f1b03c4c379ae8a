package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
)

// CourseCounter defines the count operation of the catalog service.
type CourseCounter interface {
	CountActiveCourses(ctx context.Context) (int64, error)
}

// CourseCountResponse represents the active course count
// swagger:model CourseCountResponse
type CourseCountResponse struct {
	// Number of active courses
	// example: 12
	Count int64 `json:"count"`
}

// NewCountCoursesHandler returns an HTTP handler for the active course count.
// @Summary Count active courses
// @Tags courses
// @Produce json
// @Success 200 {object} handlers.CourseCountResponse "Active course count"
// @Failure 500 {object} handlers.CourseErrorResponse "Internal server error"
// @Router /courses/count [get]
func NewCountCoursesHandler(svc CourseCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.CountActiveCourses(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Internal Server Error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CourseCountResponse{
			Count: count,
		})
	}
}
