package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CourseArchiver defines the archive toggles of the catalog service.
type CourseArchiver interface {
	ArchiveCourse(ctx context.Context, id int64) error
	UnarchiveCourse(ctx context.Context, id int64) error
}

// ArchiveResponse represents an archive toggle response
// swagger:model ArchiveResponse
type ArchiveResponse struct {
	// Message
	// example: Course with ID 1 has been archived.
	Message string `json:"message"`
}

// NewArchiveCourseHandler returns an HTTP handler that archives a course.
// @Summary Archive a course
// @Description Sets is_active to false; the course disappears from active listings
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} handlers.ArchiveResponse "Course archived"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses/{id}/archive [put]
func NewArchiveCourseHandler(svc CourseArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid course id",
			})
			return
		}

		if err := svc.ArchiveCourse(r.Context(), id); err != nil {
			writeCourseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ArchiveResponse{
			Message: fmt.Sprintf("Course with ID %d has been archived.", id),
		})
	}
}

// NewUnarchiveCourseHandler returns an HTTP handler that reactivates a course.
// @Summary Unarchive a course
// @Description Sets is_active back to true
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} handlers.ArchiveResponse "Course unarchived"
// @Failure 404 {object} handlers.CourseErrorResponse "Course not found"
// @Router /courses/{id}/unarchive [put]
func NewUnarchiveCourseHandler(svc CourseArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := courseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Message: "Invalid course id",
			})
			return
		}

		if err := svc.UnarchiveCourse(r.Context(), id); err != nil {
			writeCourseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ArchiveResponse{
			Message: fmt.Sprintf("Course with ID %d has been unarchived.", id),
		})
	}
}
