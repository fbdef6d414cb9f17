package observe

import (
	"context"
	"errors"
	"fmt"

	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type Request struct {
	AgentID string `json:"agent_id"`
}

// UseCase serves the latest published fog-filtered view for an agent.
type UseCase struct {
	Board ports.ViewBoard
}

func (uc UseCase) Execute(_ context.Context, req Request) (game.AgentView, error) {
	if req.AgentID == "" {
		return game.AgentView{}, fmt.Errorf("%w: agent_id is required", ErrInvalidRequest)
	}
	view, ok := uc.Board.LatestView(req.AgentID)
	if !ok {
		return game.AgentView{}, fmt.Errorf("%w: no view for agent %s", ports.ErrNotFound, req.AgentID)
	}
	return view, nil
}
