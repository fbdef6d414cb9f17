package action

import (
	"context"

	"gridwar/internal/domain/game"
)

type buildStructureHandler struct{}

// Execute raises a structure from a faction building design. The builder
// unit must carry the build ability and stand adjacent to the site.
func (buildStructureHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	builderID, ok := stringParam(ac, "unit_id")
	if !ok {
		return failure("missing parameter: unit_id")
	}
	designName, ok := stringParam(ac, "design")
	if !ok {
		return failure("missing parameter: design")
	}
	x, okX := intParam(ac, "x")
	y, okY := intParam(ac, "y")
	if !okX || !okY {
		return failure("missing parameters: x, y")
	}

	st := ac.State
	builder := ac.Faction.UnitByID(builderID)
	if builder == nil {
		return failure("unit not found in your faction: " + builderID)
	}
	if !builder.Alive() {
		return failure("builder unit is dead")
	}
	if !builder.HasAbility("build") {
		return failure("unit lacks the build ability")
	}
	design, ok := ac.Faction.BuildingDesigns[designName]
	if !ok {
		return failure("unknown building design: " + designName)
	}

	site := st.TileAt(x, y)
	if site == nil {
		return failure("build site out of bounds")
	}
	if game.ManhattanDistance(builder.X, builder.Y, x, y) != 1 {
		return failure("builder must be adjacent to the build site")
	}
	if !site.CanPlaceBuilding() {
		return failure("build site is blocked or unsuitable terrain")
	}

	cost := game.ScaleCost(design.CreationCost, st.Balance.BuildingCostMultiplier)
	if !ac.Faction.SpendResources(cost) {
		return failure("insufficient resources")
	}

	building := game.NewBuilding(design.Name, design.Type, ac.Faction.AgentID, x, y, design)
	if !ac.Faction.AddBuilding(building) {
		ac.Faction.Refund(cost)
		return failure("faction building limit reached")
	}
	site.PlaceBuilding(building.ID)
	st.LogEvent("building_constructed", map[string]any{
		"agent_id":    ac.Faction.AgentID,
		"building_id": building.ID,
		"type":        string(building.Type),
		"x":           x,
		"y":           y,
	})
	return success(map[string]any{
		"building_id": building.ID,
		"type":        string(building.Type),
		"x":           x,
		"y":           y,
		"cost":        cost,
	})
}
