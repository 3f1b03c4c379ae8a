package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imraac/LMS-backend/internal/services"
)

func TestArchiveCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("archives", func(t *testing.T) {
		mockSvc := NewMockCourseArchiver(ctrl)
		mockSvc.EXPECT().
			ArchiveCourse(gomock.Any(), int64(3)).
			Return(nil)

		handler := NewArchiveCourseHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPut, "/courses/3/archive", nil)
		req = withChiParam(req, "id", "3")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ArchiveResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Course with ID 3 has been archived.", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockCourseArchiver(ctrl)
		mockSvc.EXPECT().
			ArchiveCourse(gomock.Any(), int64(42)).
			Return(services.ErrCourseNotFound)

		handler := NewArchiveCourseHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPut, "/courses/42/archive", nil)
		req = withChiParam(req, "id", "42")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUnarchiveCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseArchiver(ctrl)
	mockSvc.EXPECT().
		UnarchiveCourse(gomock.Any(), int64(3)).
		Return(nil)

	handler := NewUnarchiveCourseHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPut, "/courses/3/unarchive", nil)
	req = withChiParam(req, "id", "3")

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ArchiveResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Course with ID 3 has been unarchived.", resp.Message)
}
