package action

import (
	"context"

	"gridwar/internal/domain/game"
)

// ActionSpec binds an action type to its handler and phase gate.
type ActionSpec struct {
	Type    game.ActionType
	Phases  []game.GamePhase
	Handler ActionHandler
}

type ActionHandler interface {
	Execute(ctx context.Context, uc UseCase, ac *ActionContext) game.ActionResult
}

// ActionContext carries everything one processor invocation needs: the
// live state, the acting faction, and the raw proposal.
type ActionContext struct {
	State   *game.State
	Faction *game.Faction
	Action  game.ProposedAction
}

func (ac *ActionContext) param(key string) (any, bool) {
	if ac.Action.Parameters == nil {
		return nil, false
	}
	v, ok := ac.Action.Parameters[key]
	return v, ok
}

func actionRegistry() map[game.ActionType]ActionSpec {
	setup := []game.GamePhase{game.PhaseSetup}
	playing := []game.GamePhase{game.PhasePlaying}
	anyActive := []game.GamePhase{game.PhaseSetup, game.PhaseBalancing, game.PhasePlaying}
	return map[game.ActionType]ActionSpec{
		game.ActionCreateFaction:  {Type: game.ActionCreateFaction, Phases: setup, Handler: createFactionHandler{}},
		game.ActionDesignUnit:     {Type: game.ActionDesignUnit, Phases: anyActive, Handler: designUnitHandler{}},
		game.ActionDesignBuilding: {Type: game.ActionDesignBuilding, Phases: anyActive, Handler: designBuildingHandler{}},
		game.ActionMoveUnit:       {Type: game.ActionMoveUnit, Phases: playing, Handler: moveUnitHandler{}},
		game.ActionAttackUnit:     {Type: game.ActionAttackUnit, Phases: playing, Handler: attackUnitHandler{}},
		game.ActionCreateUnit:     {Type: game.ActionCreateUnit, Phases: playing, Handler: createUnitHandler{}},
		game.ActionBuildStructure: {Type: game.ActionBuildStructure, Phases: playing, Handler: buildStructureHandler{}},
		game.ActionFortifyUnit:    {Type: game.ActionFortifyUnit, Phases: playing, Handler: fortifyUnitHandler{}},
		game.ActionSendMessage:    {Type: game.ActionSendMessage, Phases: anyActive, Handler: sendMessageHandler{}},
	}
}

func SupportedActionTypes() []game.ActionType {
	return []game.ActionType{
		game.ActionCreateFaction,
		game.ActionDesignUnit,
		game.ActionDesignBuilding,
		game.ActionMoveUnit,
		game.ActionAttackUnit,
		game.ActionCreateUnit,
		game.ActionBuildStructure,
		game.ActionFortifyUnit,
		game.ActionSendMessage,
	}
}

func phaseAllowed(spec ActionSpec, phase game.GamePhase) bool {
	for _, p := range spec.Phases {
		if p == phase {
			return true
		}
	}
	return false
}
