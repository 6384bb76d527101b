package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. The resumes table stores the full
// record as JSONB keyed by document_id; the schema is applied out of band.
type PGRepo struct {
	DB *sql.DB
}

// Put inserts a new record.
func (r *PGRepo) Put(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (document_id, record, created_at)
VALUES ($1, $2, $3)`

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, rec.DocumentID, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert resume %s: %w", rec.DocumentID, err)
	}
	return nil
}

// Get returns the record for documentID, or ErrNotFound.
func (r *PGRepo) Get(ctx context.Context, documentID string) (Record, error) {
	const query = `SELECT record FROM resumes WHERE document_id = $1`

	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, documentID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("select resume %s: %w", documentID, err)
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal resume %s: %w", documentID, err)
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
