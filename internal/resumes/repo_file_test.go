package resumes_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/resumes"
)

func newFileRepo(t *testing.T) (*resumes.FileRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meta", "data.json")
	repo, err := resumes.NewFileRepo(path)
	require.NoError(t, err)
	return repo, path
}

func TestFileRepoRoundTrip(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	first := resumes.Record{
		DocumentID: "doc-1",
		Summary:    "Backend engineer",
		Skills:     []string{"Go"},
	}
	second := resumes.Record{
		DocumentID: "doc-2",
		Contact:    &resumes.Contact{Name: "John Doe", Email: "john@example.com"},
		Skills:     []string{"Python", "Go"},
	}
	require.NoError(t, repo.Put(ctx, first))
	require.NoError(t, repo.Put(ctx, second))

	got, err := repo.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", got.Summary)

	got, err = repo.Get(ctx, "doc-2")
	require.NoError(t, err)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "John Doe", got.Contact.Name)
	assert.Equal(t, []string{"Python", "Go"}, got.Skills)
}

func TestFileRepoGetUnknownID(t *testing.T) {
	repo, _ := newFileRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, resumes.ErrNotFound)
}

func TestFileRepoSurvivesCorruptFile(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	rec := resumes.Record{DocumentID: "doc-after-corruption", Summary: "still works"}
	require.NoError(t, repo.Put(ctx, rec))

	got, err := repo.Get(ctx, "doc-after-corruption")
	require.NoError(t, err)
	assert.Equal(t, "still works", got.Summary)
}

func TestFileRepoInitializesMissingFile(t *testing.T) {
	_, path := newFileRepo(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}
