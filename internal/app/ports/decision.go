package ports

import (
	"context"

	"gridwar/internal/domain/game"
)

// DecisionMaker is the boundary to whatever picks an agent's actions: an
// LLM client, a scripted policy, a test fake. The context carries the turn
// deadline; implementations should honor cancellation.
type DecisionMaker interface {
	ProposeActions(ctx context.Context, view game.AgentView) ([]game.ProposedAction, error)
}

// BalanceReviewer inspects the full state between setup and play and may
// return balance multiplier adjustments. Optional.
type BalanceReviewer interface {
	ReviewBalance(ctx context.Context, snapshot game.Snapshot) (map[string]float64, error)
}
