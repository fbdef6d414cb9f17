package action

import (
	"context"

	"gridwar/internal/domain/game"
)

type createUnitHandler struct{}

func (createUnitHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	buildingID, ok := stringParam(ac, "building_id")
	if !ok {
		return failure("missing parameter: building_id")
	}
	designName, ok := stringParam(ac, "design")
	if !ok {
		return failure("missing parameter: design")
	}
	quantity := intParamDefault(ac, "quantity", 1)

	building := ac.Faction.BuildingByID(buildingID)
	if building == nil {
		return failure("building not found in your faction: " + buildingID)
	}

	report := ac.State.ProduceUnits(ac.Faction, building, designName, quantity)
	if !report.Success {
		return failure(report.Reason)
	}
	return success(map[string]any{
		"building_id": building.ID,
		"design":      designName,
		"requested":   report.Requested,
		"created":     report.Created,
		"unit_ids":    report.UnitIDs,
		"total_cost":  report.TotalCost,
		"refund":      report.Refund,
	})
}
