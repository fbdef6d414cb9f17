// Package memory provides the in-process repository backends. They are the
// default wiring; the gorm package mirrors them for archival to postgres.
package memory

import (
	"sync"

	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

// Store is the shared backing for the in-memory repositories.
type Store struct {
	mu      sync.RWMutex
	events  map[string][]game.Event
	matches map[string]ports.MatchRecord
}

func NewStore() *Store {
	return &Store{
		events:  make(map[string][]game.Event),
		matches: make(map[string]ports.MatchRecord),
	}
}
