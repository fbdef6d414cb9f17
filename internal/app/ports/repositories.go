package ports

import (
	"context"
	"time"

	"gridwar/internal/domain/game"
)

// EventRepository stores the full per-agent action/event stream; the
// in-state log is bounded, this one is not.
type EventRepository interface {
	Append(ctx context.Context, agentID string, events []game.Event) error
	// ListByAgentID returns the most recent events for an agent in
	// chronological order, at most limit entries (all when limit <= 0).
	ListByAgentID(ctx context.Context, agentID string, limit int) ([]game.Event, error)
}

// MatchRecord is the archived summary of a finished match.
type MatchRecord struct {
	GameID     string
	WinnerID   string
	TurnCount  int
	Phase      string
	StartedAt  time.Time
	EndedAt    time.Time
	FinalState []byte
}

type MatchArchive interface {
	SaveMatch(ctx context.Context, record MatchRecord) error
	GetMatch(ctx context.Context, gameID string) (MatchRecord, error)
}

// TxManager scopes repository writes to one transaction where the backend
// supports it; the in-memory backend runs the function directly.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
