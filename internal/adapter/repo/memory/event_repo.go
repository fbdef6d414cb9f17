package memory

import (
	"context"

	"gridwar/internal/domain/game"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) *EventRepo {
	return &EventRepo{store: store}
}

func (r *EventRepo) Append(_ context.Context, agentID string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[agentID] = append(r.store.events[agentID], events...)
	return nil
}

func (r *EventRepo) ListByAgentID(_ context.Context, agentID string, limit int) ([]game.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events[agentID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return append([]game.Event(nil), all...), nil
}
