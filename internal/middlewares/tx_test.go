package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddlewareCommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tx := GetTxFromContext(r.Context())
		assert.NotNil(t, tx)

		_, err := tx.ExecContext(r.Context(), "INSERT INTO payments (user_id) VALUES ($1)", 1)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
	})

	r := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
	w := httptest.NewRecorder()

	TxMiddleware(db)(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddlewareRollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	r := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
	w := httptest.NewRecorder()

	assert.Panics(t, func() {
		TxMiddleware(db)(next).ServeHTTP(w, r)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddlewareBeginFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run when begin fails")
	})

	r := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
	w := httptest.NewRecorder()

	TxMiddleware(db)(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContextWithoutTx(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(r.Context()))
}
