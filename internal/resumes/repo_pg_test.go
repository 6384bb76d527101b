package resumes_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/resumes"
)

func newPGRepo(t *testing.T) (*resumes.PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &resumes.PGRepo{DB: db}, mock
}

func TestPGRepoPut(t *testing.T) {
	repo, mock := newPGRepo(t)

	rec := resumes.Record{
		DocumentID: "doc-1",
		Summary:    "Engineer",
		Skills:     []string{"Go"},
	}
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(rec.DocumentID, payload, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Put(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGet(t *testing.T) {
	repo, mock := newPGRepo(t)

	stored := resumes.Record{
		DocumentID: "doc-1",
		Contact:    &resumes.Contact{Name: "John Doe"},
		Skills:     []string{"Python", "Go"},
	}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT record FROM resumes").
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows([]string{"record"}).AddRow(payload))

	got, err := repo.Get(context.Background(), "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "John Doe", got.Contact.Name)
	assert.Equal(t, []string{"Python", "Go"}, got.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetNotFound(t *testing.T) {
	repo, mock := newPGRepo(t)

	mock.ExpectQuery("SELECT record FROM resumes").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"record"}))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, resumes.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
