package services

import (
	"context"
	"errors"

	"github.com/imraac/LMS-backend/internal/facades"
	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// ErrCourseNotFound is returned when a course id does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseReader defines read-only operations for courses.
type CourseReader interface {
	List(ctx context.Context, activeOnly bool) ([]models.CourseDB, error)
	ListPro(ctx context.Context) ([]models.CourseDB, error)
	GetByID(ctx context.Context, id int64) (*models.CourseDB, error)
	CountActive(ctx context.Context) (int64, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, course models.CourseDB) (*models.CourseDB, error)
	Update(ctx context.Context, course models.CourseDB) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// VideoMetadataLookup resolves title/description/thumbnail for a video URL.
type VideoMetadataLookup interface {
	Lookup(ctx context.Context, videoURL string) (*facades.VideoMetadata, error)
}

// CourseInput carries the caller-supplied fields for course creation and update.
type CourseInput struct {
	Title            string
	Description      string
	Image            string
	Video            string
	TechStack        []string
	WhatYouWillLearn []string
}

// CourseService handles the course catalog.
type CourseService struct {
	reader CourseReader
	writer CourseWriter
	video  VideoMetadataLookup
}

// NewCourseService creates a new CourseService instance.
// video may be nil, in which case no metadata enrichment happens.
func NewCourseService(reader CourseReader, writer CourseWriter, video VideoMetadataLookup) *CourseService {
	return &CourseService{
		reader: reader,
		writer: writer,
		video:  video,
	}
}

// ListCourses returns courses, filtered to active ones unless disabled.
func (svc *CourseService) ListCourses(ctx context.Context, activeOnly bool) ([]models.CourseDB, error) {
	return svc.reader.List(ctx, activeOnly)
}

// ListProCourses returns subscription-gated courses regardless of active status.
func (svc *CourseService) ListProCourses(ctx context.Context) ([]models.CourseDB, error) {
	return svc.reader.ListPro(ctx)
}

// CountActiveCourses returns the number of active courses.
func (svc *CourseService) CountActiveCourses(ctx context.Context) (int64, error) {
	return svc.reader.CountActive(ctx)
}

// GetCourse returns a single course by id.
func (svc *CourseService) GetCourse(ctx context.Context, id int64) (*models.CourseDB, error) {
	course, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "id", id, "err", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// enrichFromVideo overwrites title/description/image from the video host
// when a lookup succeeds. Lookup failures are logged and skipped.
func (svc *CourseService) enrichFromVideo(ctx context.Context, course *models.CourseDB) {
	if svc.video == nil || course.Video == "" {
		return
	}
	meta, err := svc.video.Lookup(ctx, course.Video)
	if err != nil {
		logger.Log.Warnw("skipping video metadata enrichment", "video", course.Video, "err", err)
		return
	}
	course.Title = meta.Title
	course.Description = meta.Description
	course.Image = meta.Thumbnail
}

// CreateCourse persists a new active, non-gated course.
// When a video URL is supplied, title/description/image are resolved from
// the video host on a best-effort basis.
func (svc *CourseService) CreateCourse(ctx context.Context, input CourseInput) (*models.CourseDB, error) {
	course := models.CourseDB{
		Title:            input.Title,
		Description:      input.Description,
		Image:            input.Image,
		Video:            input.Video,
		TechStack:        models.EncodeStringList(input.TechStack),
		WhatYouWillLearn: models.EncodeStringList(input.WhatYouWillLearn),
		IsActive:         true,
	}
	svc.enrichFromVideo(ctx, &course)

	saved, err := svc.writer.Save(ctx, course)
	if err != nil {
		logger.Log.Errorw("failed to save course", "title", course.Title, "err", err)
		return nil, err
	}
	return saved, nil
}

// CreateProCourse persists a new course with explicit is_active and
// requires_subscription flags.
func (svc *CourseService) CreateProCourse(ctx context.Context, input CourseInput, isActive, requiresSubscription bool) (*models.CourseDB, error) {
	course := models.CourseDB{
		Title:                input.Title,
		Description:          input.Description,
		Image:                input.Image,
		Video:                input.Video,
		TechStack:            models.EncodeStringList(input.TechStack),
		WhatYouWillLearn:     models.EncodeStringList(input.WhatYouWillLearn),
		IsActive:             isActive,
		RequiresSubscription: requiresSubscription,
	}

	saved, err := svc.writer.Save(ctx, course)
	if err != nil {
		logger.Log.Errorw("failed to save pro course", "title", course.Title, "err", err)
		return nil, err
	}
	return saved, nil
}

// UpdateCourse replaces a course's mutable fields. If the video URL changed,
// metadata is re-resolved from the video host before other overrides apply.
func (svc *CourseService) UpdateCourse(ctx context.Context, id int64, input CourseInput) (*models.CourseDB, error) {
	course, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load course for update", "id", id, "err", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if input.Video != "" && input.Video != course.Video {
		course.Video = input.Video
		svc.enrichFromVideo(ctx, course)
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Image != "" {
		course.Image = input.Image
	}
	if input.TechStack != nil {
		course.TechStack = models.EncodeStringList(input.TechStack)
	}
	if input.WhatYouWillLearn != nil {
		course.WhatYouWillLearn = models.EncodeStringList(input.WhatYouWillLearn)
	}

	if err := svc.writer.Update(ctx, *course); err != nil {
		logger.Log.Errorw("failed to update course", "id", id, "err", err)
		return nil, err
	}
	return course, nil
}

// ArchiveCourse deactivates a course.
func (svc *CourseService) ArchiveCourse(ctx context.Context, id int64) error {
	return svc.setActive(ctx, id, false)
}

// UnarchiveCourse reactivates a course.
func (svc *CourseService) UnarchiveCourse(ctx context.Context, id int64) error {
	return svc.setActive(ctx, id, true)
}

func (svc *CourseService) setActive(ctx context.Context, id int64, active bool) error {
	err := svc.writer.SetActive(ctx, id, active)
	if err != nil {
		if isNoRows(err) {
			return ErrCourseNotFound
		}
		logger.Log.Errorw("failed to toggle course active flag", "id", id, "active", active, "err", err)
		return err
	}
	return nil
}

// DeleteCourse removes a course.
func (svc *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	err := svc.writer.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return ErrCourseNotFound
		}
		logger.Log.Errorw("failed to delete course", "id", id, "err", err)
		return err
	}
	return nil
}
