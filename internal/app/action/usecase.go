package action

import (
	"context"
	"fmt"

	"gridwar/internal/domain/game"
)

// UseCase executes one proposed action against the match state. All
// validation failures come back as unsuccessful results, never Go errors;
// a processor panic is caught and reported as a critical failure so the
// rest of the turn is abandoned without taking the match down.
type UseCase struct {
	Registry *game.Registry
	Combat   game.CombatService
}

func NewUseCase(registry *game.Registry) UseCase {
	return UseCase{
		Registry: registry,
		Combat:   game.CombatService{Registry: registry},
	}
}

func (uc UseCase) Execute(ctx context.Context, st *game.State, act game.ProposedAction) (res game.ActionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			res = game.ActionResult{
				Success:  false,
				Error:    fmt.Sprintf("action processor panic: %v", rec),
				Critical: true,
			}
		}
	}()

	spec, ok := actionRegistry()[act.Type]
	if !ok {
		return failure(fmt.Sprintf("unknown action type: %s", act.Type))
	}
	if !phaseAllowed(spec, st.Phase) {
		return failure(fmt.Sprintf("action %s not allowed in phase %s", act.Type, st.Phase))
	}

	ac := &ActionContext{
		State:   st,
		Faction: st.FactionFor(act.AgentID),
		Action:  act,
	}
	if act.Type != game.ActionCreateFaction && ac.Faction == nil {
		return failure("agent has no faction")
	}
	return spec.Handler.Execute(ctx, uc, ac)
}

func failure(msg string) game.ActionResult {
	return game.ActionResult{Success: false, Error: msg}
}

func success(fields map[string]any) game.ActionResult {
	return game.ActionResult{Success: true, Fields: fields}
}
