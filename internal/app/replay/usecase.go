package replay

import (
	"context"
	"errors"
	"fmt"

	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 100

type Request struct {
	AgentID string `json:"agent_id"`
	Limit   int    `json:"limit"`
}

type Response struct {
	AgentID string       `json:"agent_id"`
	Events  []game.Event `json:"events"`
}

// UseCase reads back an agent's recorded event stream.
type UseCase struct {
	Events ports.EventRepository
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.AgentID == "" {
		return Response{}, fmt.Errorf("%w: agent_id is required", ErrInvalidRequest)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := uc.Events.ListByAgentID(ctx, req.AgentID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{AgentID: req.AgentID, Events: events}, nil
}
