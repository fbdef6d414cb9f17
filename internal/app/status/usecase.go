package status

import (
	"context"
	"fmt"

	"gridwar/internal/app/ports"
)

type FactionStatus struct {
	AgentID        string         `json:"agent_id"`
	Name           string         `json:"name"`
	Units          int            `json:"units"`
	Buildings      int            `json:"buildings"`
	Resources      map[string]int `json:"resources"`
	UnitsCreated   int            `json:"units_created"`
	UnitsLost      int            `json:"units_lost"`
	BuildingsBuilt int            `json:"buildings_built"`
	BuildingsLost  int            `json:"buildings_lost"`
}

type Response struct {
	GameID     string          `json:"game_id"`
	TurnNumber int             `json:"turn_number"`
	Phase      string          `json:"phase"`
	WinnerID   string          `json:"winner_id,omitempty"`
	Factions   []FactionStatus `json:"factions"`
}

// UseCase summarizes the latest published round for spectators.
type UseCase struct {
	Board ports.ViewBoard
}

func (uc UseCase) Execute(_ context.Context) (Response, error) {
	snap, ok := uc.Board.LatestSnapshot()
	if !ok {
		return Response{}, fmt.Errorf("%w: no round published yet", ports.ErrNotFound)
	}
	resp := Response{
		GameID:     snap.GameID,
		TurnNumber: snap.TurnNumber,
		Phase:      snap.Phase,
		WinnerID:   snap.WinnerID,
	}
	for _, agentID := range snap.TurnOrder {
		f, ok := snap.Factions[agentID]
		if !ok {
			continue
		}
		resp.Factions = append(resp.Factions, FactionStatus{
			AgentID:        agentID,
			Name:           f.Name,
			Units:          len(f.Units),
			Buildings:      len(f.Buildings),
			Resources:      f.Resources,
			UnitsCreated:   f.UnitsCreated,
			UnitsLost:      f.UnitsLost,
			BuildingsBuilt: f.BuildingsBuilt,
			BuildingsLost:  f.BuildingsLost,
		})
	}
	return resp, nil
}
