package action

import (
	"context"

	"gridwar/internal/domain/game"
)

type attackUnitHandler struct{}

// Execute resolves a unit attack through the combat service and cleans
// destroyed units off the board immediately, so later actions in the same
// turn see the corpse-free state.
func (attackUnitHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) game.ActionResult {
	attackerID, ok := stringParam(ac, "unit_id")
	if !ok {
		return failure("missing parameter: unit_id")
	}
	targetID, ok := stringParam(ac, "target_id")
	if !ok {
		return failure("missing parameter: target_id")
	}

	st := ac.State
	attacker := ac.Faction.UnitByID(attackerID)
	if attacker == nil {
		return failure("unit not found in your faction: " + attackerID)
	}
	target, targetOwner := st.FindUnit(targetID)
	if target == nil {
		return failure("target unit not found: " + targetID)
	}

	report := uc.Combat.Attack(st, attacker, target)
	if !report.Success {
		return failure(report.Reason)
	}

	if report.TargetDestroyed {
		removeUnitFromBoard(st, targetOwner, target)
		ac.Faction.EnemyUnitsKilled++
		st.LogEvent("unit_destroyed", map[string]any{
			"unit_id":   target.ID,
			"owner":     targetOwner.AgentID,
			"killed_by": attacker.ID,
		})
	}
	for _, hit := range report.SplashHits {
		if !hit.Destroyed {
			continue
		}
		if victim, owner := st.FindUnit(hit.UnitID); victim != nil {
			removeUnitFromBoard(st, owner, victim)
			ac.Faction.EnemyUnitsKilled++
			st.LogEvent("unit_destroyed", map[string]any{
				"unit_id":   victim.ID,
				"owner":     owner.AgentID,
				"killed_by": attacker.ID,
				"splash":    true,
			})
		}
	}

	return success(map[string]any{
		"attacker_id":             attacker.ID,
		"target_id":               target.ID,
		"damage_dealt":            report.DamageDealt,
		"target_remaining_health": report.TargetHealth,
		"target_destroyed":        report.TargetDestroyed,
		"abilities_applied":       report.AbilitiesApplied,
		"splash_hits":             len(report.SplashHits),
	})
}

func removeUnitFromBoard(st *game.State, owner *game.Faction, u *game.Unit) {
	if t := st.TileAt(u.X, u.Y); t != nil && t.UnitID == u.ID {
		t.RemoveUnit()
	}
	if owner != nil {
		owner.RemoveUnit(u.ID)
	}
}
