package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"resume-parser/internal/shared/telemetry"
)

// FileRepo implements Repo on a single JSON file mapping
// document_id -> record. The whole file is read and rewritten on each Put;
// a mutex serializes writers so concurrent uploads cannot lose updates
// within this process.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo ensures the metadata file and its parent directory exist and
// returns a repo backed by it.
func NewFileRepo(path string) (*FileRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir metadata dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
			return nil, fmt.Errorf("init metadata file: %w", err)
		}
	}
	return &FileRepo{path: path}, nil
}

// Put writes the record keyed by its document ID, rewriting the whole file.
func (r *FileRepo) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	meta := r.loadTolerant()
	meta[rec.DocumentID] = rec

	payload, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(r.path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write metadata file %s: %w", r.path, err)
	}
	return nil
}

// Get returns the record for documentID, or ErrNotFound.
func (r *FileRepo) Get(ctx context.Context, documentID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return Record{}, fmt.Errorf("read metadata file %s: %w", r.path, err)
	}
	var meta map[string]Record
	if err := json.Unmarshal(data, &meta); err != nil {
		return Record{}, fmt.Errorf("parse metadata file %s: %w", r.path, err)
	}
	rec, ok := meta[documentID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// loadTolerant reads the current metadata map, starting fresh when the file
// is missing or corrupted so a bad file never blocks new writes.
func (r *FileRepo) loadTolerant() map[string]Record {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return make(map[string]Record)
	}
	var meta map[string]Record
	if err := json.Unmarshal(data, &meta); err != nil || meta == nil {
		telemetry.Warn("metadata file corrupted, starting fresh", map[string]any{
			"path": r.path,
		})
		return make(map[string]Record)
	}
	return meta
}

var _ Repo = (*FileRepo)(nil)
