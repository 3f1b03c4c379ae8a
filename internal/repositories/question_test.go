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

func setupQuestionPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS questions (
		id BIGSERIAL PRIMARY KEY,
		question_text TEXT NOT NULL,
		category VARCHAR(50) NOT NULL,
		options TEXT NOT NULL DEFAULT '[]',
		correct_answer TEXT NOT NULL
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

func TestQuestionRepositories(t *testing.T) {
	db, teardown := setupQuestionPostgresContainer(t)
	defer teardown()

	writeRepo := NewQuestionWriteRepository(db)
	readRepo := NewQuestionReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, models.QuestionDB{
		QuestionText:  "What does CSS stand for?",
		Category:      "css",
		Options:       `["Cascading Style Sheets","Creative Style System"]`,
		CorrectAnswer: "Cascading Style Sheets",
	})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	_, err = writeRepo.Save(ctx, models.QuestionDB{
		QuestionText:  "Which keyword declares a block-scoped variable?",
		Category:      "javascript",
		Options:       `["var","let","def"]`,
		CorrectAnswer: "let",
	})
	assert.NoError(t, err)

	t.Run("ListByCategory", func(t *testing.T) {
		questions, err := readRepo.ListByCategory(ctx, "css")
		assert.NoError(t, err)
		assert.Len(t, questions, 1)
		assert.Equal(t, "What does CSS stand for?", questions[0].QuestionText)
	})

	t.Run("ListByCategoryEmpty", func(t *testing.T) {
		questions, err := readRepo.ListByCategory(ctx, "python")
		assert.NoError(t, err)
		assert.Empty(t, questions)
	})
}
