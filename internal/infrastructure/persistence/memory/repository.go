// Package memory provides an in-process StateRepository backed by a map.
// It serves tests and single-node deployments without Redis; blobs are kept
// as marshaled JSON so load/save round-trips behave exactly like a remote
// store.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/recipify/v2/internal/domain/user"
	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

// Repository is a map-backed StateRepository, safe for concurrent use.
type Repository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{blobs: make(map[string][]byte)}
}

// Load implements outbound.StateRepository.
func (r *Repository) Load(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	blob, ok := r.blobs[outbound.Key(kind, scope)]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return false, apperrors.NewStorageError(string(kind), err)
	}
	return true, nil
}

// Save implements outbound.StateRepository.
func (r *Repository) Save(ctx context.Context, scope user.Scope, kind outbound.EntityKind, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blob, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewStorageError(string(kind), err)
	}
	r.mu.Lock()
	r.blobs[outbound.Key(kind, scope)] = blob
	r.mu.Unlock()
	return nil
}

// Delete implements outbound.StateRepository.
func (r *Repository) Delete(ctx context.Context, scope user.Scope, kind outbound.EntityKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.blobs, outbound.Key(kind, scope))
	r.mu.Unlock()
	return nil
}
