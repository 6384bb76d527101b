package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Record),
	}
}

// Put stores the record keyed by its document ID.
func (r *MemoryRepo) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.DocumentID] = rec
	return nil
}

// Get returns the record for documentID, or ErrNotFound.
func (r *MemoryRepo) Get(ctx context.Context, documentID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[documentID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Len reports the number of stored records.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ Repo = (*MemoryRepo)(nil)
