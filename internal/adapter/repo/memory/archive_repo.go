package memory

import (
	"context"
	"fmt"

	"gridwar/internal/app/ports"
)

type ArchiveRepo struct {
	store *Store
}

func NewArchiveRepo(store *Store) *ArchiveRepo {
	return &ArchiveRepo{store: store}
}

func (r *ArchiveRepo) SaveMatch(_ context.Context, record ports.MatchRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.matches[record.GameID]; exists {
		return fmt.Errorf("%w: match %s already archived", ports.ErrConflict, record.GameID)
	}
	r.store.matches[record.GameID] = record
	return nil
}

func (r *ArchiveRepo) GetMatch(_ context.Context, gameID string) (ports.MatchRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.matches[gameID]
	if !ok {
		return ports.MatchRecord{}, fmt.Errorf("%w: match %s", ports.ErrNotFound, gameID)
	}
	return record, nil
}
