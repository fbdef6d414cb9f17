package action

import (
	"context"

	"gridwar/internal/domain/game"
)

type moveUnitHandler struct{}

// Execute relocates an owned unit, keeping tile occupancy in sync with the
// unit's coordinates. The speed budget scales with the movement balance
// multiplier.
func (moveUnitHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	unitID, ok := stringParam(ac, "unit_id")
	if !ok {
		return failure("missing parameter: unit_id")
	}
	x, okX := intParam(ac, "x")
	y, okY := intParam(ac, "y")
	if !okX || !okY {
		return failure("missing parameters: x, y")
	}

	st := ac.State
	unit := ac.Faction.UnitByID(unitID)
	if unit == nil {
		return failure("unit not found in your faction: " + unitID)
	}
	if !unit.CanMove() {
		return failure("unit cannot move this turn")
	}
	if !st.InBounds(x, y) {
		return failure("destination out of bounds")
	}

	dest := st.TileAt(x, y)
	if !dest.CanPlaceUnit() {
		return failure("destination tile is blocked")
	}

	budget := int(float64(unit.Stats.MovementSpeed) * st.Balance.MovementSpeedMultiplier)
	if budget < 1 {
		budget = 1
	}

	origin := st.TileAt(unit.X, unit.Y)
	if !unit.MoveTo(x, y, budget) {
		return failure("destination beyond movement range")
	}
	if origin != nil && origin.UnitID == unit.ID {
		origin.RemoveUnit()
	}
	dest.PlaceUnit(unit.ID)

	return success(map[string]any{
		"unit_id": unit.ID,
		"x":       x,
		"y":       y,
	})
}

type fortifyUnitHandler struct{}

func (fortifyUnitHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	unitID, ok := stringParam(ac, "unit_id")
	if !ok {
		return failure("missing parameter: unit_id")
	}
	unit := ac.Faction.UnitByID(unitID)
	if unit == nil {
		return failure("unit not found in your faction: " + unitID)
	}
	if !unit.Fortify() {
		return failure("unit cannot fortify after moving")
	}
	return success(map[string]any{"unit_id": unit.ID, "fortified": true})
}
