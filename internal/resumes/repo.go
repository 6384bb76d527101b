package resumes

import "context"

// Repo defines persistence operations for parsed resume records.
// A record is written once at upload time and never updated or deleted.
type Repo interface {
	Put(ctx context.Context, rec Record) error
	Get(ctx context.Context, documentID string) (Record, error)
}
