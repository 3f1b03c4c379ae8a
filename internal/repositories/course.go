package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// CourseReadRepository handles course read operations
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns courses ordered by id, filtered to active ones when activeOnly is set.
func (r *CourseReadRepository) List(ctx context.Context, activeOnly bool) ([]models.CourseDB, error) {
	const query = `
		SELECT id, title, description, image, video, tech_stack,
		       what_you_will_learn, is_active, requires_subscription
		FROM courses
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY id
	`

	var courses []models.CourseDB
	err := r.db.SelectContext(ctx, &courses, query, activeOnly)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{activeOnly},
		"result", len(courses),
		"error", err,
	)

	return courses, err
}

// ListPro returns all subscription-gated courses regardless of active status.
func (r *CourseReadRepository) ListPro(ctx context.Context) ([]models.CourseDB, error) {
	const query = `
		SELECT id, title, description, image, video, tech_stack,
		       what_you_will_learn, is_active, requires_subscription
		FROM courses
		WHERE requires_subscription = TRUE
		ORDER BY id
	`

	var courses []models.CourseDB
	err := r.db.SelectContext(ctx, &courses, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(courses),
		"error", err,
	)

	return courses, err
}

// GetByID returns the course with the given id, or nil if none exists.
func (r *CourseReadRepository) GetByID(ctx context.Context, id int64) (*models.CourseDB, error) {
	const query = `
		SELECT id, title, description, image, video, tech_stack,
		       what_you_will_learn, is_active, requires_subscription
		FROM courses
		WHERE id = $1
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CountActive returns the number of active courses.
func (r *CourseReadRepository) CountActive(ctx context.Context) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM courses
		WHERE is_active = TRUE
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	return count, err
}

// CourseWriteRepository handles course write operations
type CourseWriteRepository struct {
	db *sqlx.DB
}

func NewCourseWriteRepository(db *sqlx.DB) *CourseWriteRepository {
	return &CourseWriteRepository{db: db}
}

// Save inserts a new course and returns the stored row.
func (r *CourseWriteRepository) Save(ctx context.Context, course models.CourseDB) (*models.CourseDB, error) {
	const query = `
		INSERT INTO courses (title, description, image, video, tech_stack,
		                     what_you_will_learn, is_active, requires_subscription)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, description, image, video, tech_stack,
		          what_you_will_learn, is_active, requires_subscription
	`
	args := []any{
		course.Title, course.Description, course.Image, course.Video,
		course.TechStack, course.WhatYouWillLearn,
		course.IsActive, course.RequiresSubscription,
	}

	var saved models.CourseDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{course.Title},
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update replaces the mutable fields of an existing course.
// Returns sql.ErrNoRows if the id does not exist.
func (r *CourseWriteRepository) Update(ctx context.Context, course models.CourseDB) error {
	const query = `
		UPDATE courses
		SET title = $2, description = $3, image = $4, video = $5,
		    tech_stack = $6, what_you_will_learn = $7
		WHERE id = $1
	`
	args := []any{
		course.ID, course.Title, course.Description, course.Image,
		course.Video, course.TechStack, course.WhatYouWillLearn,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{course.ID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetActive flips the is_active flag.
// Returns sql.ErrNoRows if the id does not exist.
func (r *CourseWriteRepository) SetActive(ctx context.Context, id int64, active bool) error {
	const query = `
		UPDATE courses
		SET is_active = $2
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, active)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, active},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a course.
// Returns sql.ErrNoRows if the id does not exist.
func (r *CourseWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM courses
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
