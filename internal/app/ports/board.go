package ports

import "gridwar/internal/domain/game"

// ViewBoard decouples the single-writer match loop from concurrent HTTP
// readers: the runner publishes immutable copies each round, readers only
// ever see the latest published round.
type ViewBoard interface {
	PublishRound(snapshot game.Snapshot, views map[string]game.AgentView)
	LatestSnapshot() (game.Snapshot, bool)
	LatestView(agentID string) (game.AgentView, bool)
}
