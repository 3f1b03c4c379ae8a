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

// CourseLister defines the read side of the catalog used by the list handler.
type CourseLister interface {
	ListCourses(ctx context.Context, activeOnly bool) ([]models.CourseDB, error)
}

// CourseCreator defines the write side of the catalog used by the create handler.
type CourseCreator interface {
	CreateCourse(ctx context.Context, input services.CourseInput) (*models.CourseDB, error)
}

// CourseDeleter defines the delete operation used by the collection delete handler.
type CourseDeleter interface {
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseRequest represents the JSON body for course creation and update
// swagger:model CourseRequest
type CourseRequest struct {
	// Title
	// example: Introduction to Python
	Title string `json:"title"`

	// Description
	Description string `json:"description"`

	// Image URL
	Image string `json:"image"`

	// Video URL
	Video string `json:"video"`

	// Ordered list of technologies covered
	TechStack []string `json:"tech_stack"`

	// Ordered list of learning outcomes
	WhatYouWillLearn []string `json:"what_you_will_learn"`
}

func (req CourseRequest) toInput() services.CourseInput {
	return services.CourseInput{
		Title:            req.Title,
		Description:      req.Description,
		Image:            req.Image,
		Video:            req.Video,
		TechStack:        req.TechStack,
		WhatYouWillLearn: req.WhatYouWillLearn,
	}
}

// CoursesResponse represents a course listing response
// swagger:model CoursesResponse
type CoursesResponse struct {
	// Courses
	Courses []models.CourseView `json:"courses"`
}

// CourseResponse represents a single-course response with a message
// swagger:model CourseResponse
type CourseResponse struct {
	// Course
	Course models.CourseView `json:"course"`

	// Message
	// example: Course created successfully
	Message string `json:"message"`
}

// CourseErrorResponse represents an error response for course endpoints
// swagger:model CourseErrorResponse
type CourseErrorResponse struct {
	// Error message
	// example: Course not found
	Message string `json:"message"`
}

// DeleteCourseRequest represents the JSON body for collection-level deletion
// swagger:model DeleteCourseRequest
type DeleteCourseRequest struct {
	// Course ID
	// required: true
	// example: 1
	ID int64 `json:"id"`
}

func courseViews(courses []models.CourseDB) []models.CourseView {
	views := make([]models.CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, c.AsView())
	}
	return views
}

// NewListCoursesHandler returns an HTTP handler that lists courses.
// @Summary List courses
// @Description Lists courses, filtered to active ones unless active_only=false
// @Tags courses
// @Produce json
// @Param active_only query bool false "Include archived courses when false" default(true)
// @Success 200 {object} handlers.CoursesResponse "Courses"
// @Failure 500 {object} handlers.CourseErrorResponse "Internal server error"
// @Router /courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active_only") != "false"

		courses, err := svc.ListCourses(r.Context(), activeOnly)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "An error occurred",
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

// NewCreateCourseHandler returns an HTTP handler for course creation.
// @Summary Create a course
// @Description Creates an active course. When a video URL is supplied, title, description and image are resolved from the video host on a best-effort basis.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseRequest body handlers.CourseRequest true "Course creation request"
// @Success 201 {object} handlers.CourseResponse "Course created"
// @Failure 400 {object} handlers.CourseErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.CourseErrorResponse "Internal server error"
// @Router /courses [post]
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		course, err := svc.CreateCourse(r.Context(), req.toInput())
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

// NewDeleteCourseByBodyHandler returns an HTTP handler that deletes a course
// identified by an id in the request body.
// @Summary Delete a course (collection level)
// @Description Deletes the course whose id is carried in the request body
// @Tags courses
// @Accept json
// @Produce json
// @Param deleteCourseRequest body handlers.DeleteCourseRequest true "Course deletion request"
// @Success 200 {object} handlers.CourseErrorResponse "Course deleted"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses [delete]
func NewDeleteCourseByBodyHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if err := svc.DeleteCourse(r.Context(), req.ID); err != nil {
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
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CourseErrorResponse{
			Message: "Course deleted successfully",
		})
	}
}
