// Package inmemory holds the published-round board: the match loop writes
// a fresh snapshot and view set each round, HTTP readers take the latest.
package inmemory

import (
	"sync"

	"gridwar/internal/domain/game"
)

type Board struct {
	mu        sync.RWMutex
	published bool
	snapshot  game.Snapshot
	views     map[string]game.AgentView
}

func NewBoard() *Board {
	return &Board{views: make(map[string]game.AgentView)}
}

func (b *Board) PublishRound(snapshot game.Snapshot, views map[string]game.AgentView) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = true
	b.snapshot = snapshot
	b.views = views
}

func (b *Board) LatestSnapshot() (game.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot, b.published
}

func (b *Board) LatestView(agentID string) (game.AgentView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	view, ok := b.views[agentID]
	return view, ok
}
