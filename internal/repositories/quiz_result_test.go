package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/imraac/LMS-backend/internal/models"
)

func setupQuizResultPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS quiz_results (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		category VARCHAR(50) NOT NULL,
		score INT NOT NULL,
		total_questions INT NOT NULL,
		answers TEXT NOT NULL DEFAULT '',
		date_taken TIMESTAMP NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestQuizResultRepositories(t *testing.T) {
	db, teardown := setupQuizResultPostgresContainer(t)
	defer teardown()

	writeRepo := NewQuizResultWriteRepository(db)
	readRepo := NewQuizResultReadRepository(db)
	ctx := context.Background()

	takenAt := time.Date(2025, 6, 17, 10, 40, 20, 0, time.UTC)

	saved, err := writeRepo.Save(ctx, models.QuizResultDB{
		UserID:         7,
		Category:       "css",
		Score:          8,
		TotalQuestions: 10,
		Answers:        `{"q1":"inline"}`,
	}, takenAt)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, takenAt, saved.DateTaken.UTC())

	// results are accepted for user ids with no matching user row
	_, err = writeRepo.Save(ctx, models.QuizResultDB{
		UserID:         9999,
		Category:       "react",
		Score:          3,
		TotalQuestions: 10,
	}, takenAt.Add(time.Hour))
	assert.NoError(t, err)

	t.Run("List", func(t *testing.T) {
		results, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Equal(t, "css", results[0].Category)
		assert.Equal(t, `{"q1":"inline"}`, results[0].Answers)
		assert.Equal(t, int64(9999), results[1].UserID)
	})
}
