package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imraac/LMS-backend/internal/facades"
	"github.com/imraac/LMS-backend/internal/models"
)

type courseMocks struct {
	reader *MockCourseReader
	writer *MockCourseWriter
	video  *MockVideoMetadataLookup
}

func newCourseService(ctrl *gomock.Controller) (*CourseService, courseMocks) {
	m := courseMocks{
		reader: NewMockCourseReader(ctrl),
		writer: NewMockCourseWriter(ctrl),
		video:  NewMockVideoMetadataLookup(ctrl),
	}
	return NewCourseService(m.reader, m.writer, m.video), m
}

func TestCourseServiceCreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("enriches from video metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.video.EXPECT().
			Lookup(ctx, "https://youtu.be/abc123").
			Return(&facades.VideoMetadata{
				Title:       "Go in 4 Hours",
				Description: "A full course",
				Thumbnail:   "https://i.ytimg.com/vi/abc123/hq720.jpg",
			}, nil)
		m.writer.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, course models.CourseDB) (*models.CourseDB, error) {
				assert.Equal(t, "Go in 4 Hours", course.Title)
				assert.Equal(t, "A full course", course.Description)
				assert.Equal(t, "https://i.ytimg.com/vi/abc123/hq720.jpg", course.Image)
				assert.True(t, course.IsActive)
				assert.False(t, course.RequiresSubscription)
				course.ID = 1
				return &course, nil
			})

		saved, err := svc.CreateCourse(ctx, CourseInput{
			Title: "placeholder",
			Video: "https://youtu.be/abc123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Go in 4 Hours", saved.Title)
	})

	t.Run("lookup failure keeps submitted fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.video.EXPECT().
			Lookup(ctx, "https://youtu.be/abc123").
			Return(nil, errors.New("quota exceeded"))
		m.writer.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, course models.CourseDB) (*models.CourseDB, error) {
				assert.Equal(t, "Go Basics", course.Title)
				return &course, nil
			})

		_, err := svc.CreateCourse(ctx, CourseInput{
			Title: "Go Basics",
			Video: "https://youtu.be/abc123",
		})
		assert.NoError(t, err)
	})

	t.Run("no video skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.writer.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, course models.CourseDB) (*models.CourseDB, error) {
				assert.Equal(t, `["Go","PostgreSQL"]`, course.TechStack)
				return &course, nil
			})

		_, err := svc.CreateCourse(ctx, CourseInput{
			Title:     "Go Basics",
			TechStack: []string{"Go", "PostgreSQL"},
		})
		assert.NoError(t, err)
	})
}

func TestCourseServiceCreateProCourse(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCourseService(ctrl)

	m.writer.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, course models.CourseDB) (*models.CourseDB, error) {
			assert.False(t, course.IsActive)
			assert.True(t, course.RequiresSubscription)
			return &course, nil
		})

	_, err := svc.CreateProCourse(ctx, CourseInput{Title: "Advanced Go"}, false, true)
	assert.NoError(t, err)
}

func TestCourseServiceUpdateCourse(t *testing.T) {
	ctx := context.Background()

	existing := func() *models.CourseDB {
		return &models.CourseDB{
			ID:          3,
			Title:       "Old Title",
			Description: "Old description",
			Image:       "old.jpg",
			Video:       "https://youtu.be/old",
			IsActive:    true,
		}
	}

	t.Run("changed video is re-enriched before overrides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.reader.EXPECT().GetByID(ctx, int64(3)).Return(existing(), nil)
		m.video.EXPECT().
			Lookup(ctx, "https://youtu.be/new").
			Return(&facades.VideoMetadata{Title: "Fetched Title", Description: "Fetched", Thumbnail: "new.jpg"}, nil)
		m.writer.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, course models.CourseDB) error {
				// the explicit title wins over the fetched one
				assert.Equal(t, "Caller Title", course.Title)
				assert.Equal(t, "Fetched", course.Description)
				assert.Equal(t, "new.jpg", course.Image)
				assert.Equal(t, "https://youtu.be/new", course.Video)
				return nil
			})

		updated, err := svc.UpdateCourse(ctx, 3, CourseInput{
			Title: "Caller Title",
			Video: "https://youtu.be/new",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Caller Title", updated.Title)
	})

	t.Run("unchanged video skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.reader.EXPECT().GetByID(ctx, int64(3)).Return(existing(), nil)
		m.writer.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, course models.CourseDB) error {
				assert.Equal(t, "Old description", course.Description)
				return nil
			})

		_, err := svc.UpdateCourse(ctx, 3, CourseInput{Video: "https://youtu.be/old"})
		assert.NoError(t, err)
	})

	t.Run("missing course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.reader.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

		_, err := svc.UpdateCourse(ctx, 99, CourseInput{Title: "whatever"})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestCourseServiceGetCourse(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCourseService(ctrl)

	m.reader.EXPECT().GetByID(ctx, int64(3)).Return(&models.CourseDB{ID: 3}, nil)
	course, err := svc.GetCourse(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)

	m.reader.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)
	_, err = svc.GetCourse(ctx, 99)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseServiceArchiveUnarchive(t *testing.T) {
	ctx := context.Background()

	t.Run("archive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.writer.EXPECT().SetActive(ctx, int64(3), false).Return(nil)
		assert.NoError(t, svc.ArchiveCourse(ctx, 3))
	})

	t.Run("unarchive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.writer.EXPECT().SetActive(ctx, int64(3), true).Return(nil)
		assert.NoError(t, svc.UnarchiveCourse(ctx, 3))
	})

	t.Run("missing course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCourseService(ctrl)

		m.writer.EXPECT().SetActive(ctx, int64(99), false).Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.ArchiveCourse(ctx, 99), ErrCourseNotFound)
	})
}

func TestCourseServiceDeleteCourse(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCourseService(ctrl)

	m.writer.EXPECT().Delete(ctx, int64(3)).Return(nil)
	assert.NoError(t, svc.DeleteCourse(ctx, 3))

	m.writer.EXPECT().Delete(ctx, int64(99)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.DeleteCourse(ctx, 99), ErrCourseNotFound)
}
