package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/services"
)

// ProCourseLister defines the pro-course read used by the list handler.
type ProCourseLister interface {
	ListProCourses(ctx context.Context) ([]models.CourseDB, error)
}

// ProCourseCreator defines the pro-course write used by the create handler.
type ProCourseCreator interface {
	CreateProCourse(ctx context.Context, input services.CourseInput, isActive, requiresSubscription bool) (*models.CourseDB, error)
}

// ProCourseRequest represents the JSON body for pro course creation
// swagger:model ProCourseRequest
type ProCourseRequest struct {
	CourseRequest

	// Active flag
	// example: true
	IsActive *bool `json:"is_active"`

	// Subscription-gated flag
	// example: true
	RequiresSubscription bool `json:"requires_subscription"`
}

// NewCreateProCourseHandler returns an HTTP handler for pro course creation.
// @Summary Create a pro course
// @Description Creates a course with explicit is_active and requires_subscription flags
// @Tags courses
// @Accept json
// @Produce json
// @Param proCourseRequest body handlers.ProCourseRequest true "Pro course creation request"
// @Success 201 {object} handlers.CourseResponse "Course created"
// @Failure 400 {object} handlers.CourseErrorResponse "Invalid request body"
// @Router /courses/pro [post]
func NewCreateProCourseHandler(svc ProCourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		course, err := svc.CreateProCourse(r.Context(), req.toInput(), isActive, req.RequiresSubscription)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "An error occurred",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CourseResponse{
			Course:  course.AsView(),
			Message: "Course created successfully",
		})
	}
}

// NewListProCoursesHandler returns an HTTP handler that lists pro courses.
// @Summary List pro courses
// @Description Lists subscription-gated courses regardless of active status
// @Tags courses
// @Produce json
// @Success 200 {object} handlers.CoursesResponse "Pro courses"
// @Failure 500 {object} handlers.CourseErrorResponse "Internal server error"
// @Router /courses/pro [get]
func NewListProCoursesHandler(svc ProCourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.ListProCourses(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CoursesResponse{
			Courses: courseViews(courses),
		})
	}
}
