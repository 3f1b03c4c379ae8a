package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/services"
)

// CourseGetter defines the single-course read used by the detail handler.
type CourseGetter interface {
	GetCourse(ctx context.Context, id int64) (*models.CourseDB, error)
}

// CourseUpdater defines the update operation used by the detail handler.
type CourseUpdater interface {
	UpdateCourse(ctx context.Context, id int64, input services.CourseInput) (*models.CourseDB, error)
}

// courseID parses the {id} route parameter.
func courseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetCourseHandler returns an HTTP handler for a single course.
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseView "Course"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses/{id} [get]
func NewGetCourseHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid course id",
			})
			return
		}

		course, err := svc.GetCourse(r.Context(), id)
		if err != nil {
			writeCourseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(course.AsView())
	}
}

// NewUpdateCourseHandler returns an HTTP handler for course updates.
// @Summary Update a course
// @Description Replaces a course's mutable fields. When the video URL changes, title, description and image are re-resolved from the video host on a best-effort basis.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param courseRequest body handlers.CourseRequest true "Course update request"
// @Success 200 {object} models.CourseView "Updated course"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses/{id} [put]
func NewUpdateCourseHandler(svc CourseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid course id",
			})
			return
		}

		var req CourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		course, err := svc.UpdateCourse(r.Context(), id, req.toInput())
		if err != nil {
			writeCourseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(course.AsView())
	}
}

// NewDeleteCourseHandler returns an HTTP handler for path-addressed deletion.
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} handlers.CourseErrorResponse "Course deleted"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func NewDeleteCourseHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid course id",
			})
			return
		}

		if err := svc.DeleteCourse(r.Context(), id); err != nil {
			writeCourseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CourseErrorResponse{
			Message: "Course deleted successfully",
		})
	}
}

// writeCourseError maps catalog service errors onto status codes.
func writeCourseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(CourseErrorResponse{
			Message: "Course not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CourseErrorResponse{
			Message: "An error occurred",
		})
	}
}
