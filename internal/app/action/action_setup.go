package action

import (
	"context"
	"errors"
	"fmt"

	"gridwar/internal/domain/game"
)

type createFactionHandler struct{}

func (createFactionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	name, ok := stringParam(ac, "name")
	if !ok {
		return failure("missing parameter: name")
	}
	theme := game.Theme{}
	if desc, ok := stringParam(ac, "description"); ok {
		theme.Description = desc
	}
	if color, ok := stringParam(ac, "color"); ok {
		theme.Color = color
	}
	if motto, ok := stringParam(ac, "motto"); ok {
		theme.Motto = motto
	}

	f := game.NewFaction(ac.Action.AgentID, name, theme)
	if err := ac.State.AddFaction(ac.Action.AgentID, f); err != nil {
		switch {
		case errors.Is(err, game.ErrFactionExists):
			return failure("faction already created for this agent")
		case errors.Is(err, game.ErrMatchFull):
			return failure("match already has the maximum number of factions")
		default:
			return failure(err.Error())
		}
	}
	return success(map[string]any{
		"faction_id": f.ID,
		"name":       f.Name,
		"units":      len(f.Units),
		"buildings":  len(f.Buildings),
	})
}

type designUnitHandler struct{}

func (designUnitHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	name, ok := stringParam(ac, "name")
	if !ok {
		return failure("missing parameter: name")
	}
	classRaw, ok := stringParam(ac, "class")
	if !ok {
		return failure("missing parameter: class")
	}
	health, ok := intParam(ac, "health")
	if !ok {
		return failure("missing parameter: health")
	}
	attack := intParamDefault(ac, "attack", 0)
	defense := intParamDefault(ac, "defense", 0)
	speed := intParamDefault(ac, "speed", 1)
	attackRange := intParamDefault(ac, "attack_range", 1)
	sightRange := intParamDefault(ac, "sight_range", 2)

	stats, err := game.NewStats(health, attack, defense, speed, attackRange, sightRange)
	if err != nil {
		return failure(fmt.Sprintf("invalid stats: %v", err))
	}
	cost := costParam(ac, "creation_cost")
	if len(cost) == 0 {
		return failure("missing parameter: creation_cost")
	}

	design := game.UnitDesign{
		Name:         name,
		Class:        game.UnitClass(classRaw),
		Stats:        stats,
		Abilities:    stringListParam(ac, "abilities"),
		CreationCost: cost,
	}
	if desc, ok := stringParam(ac, "description"); ok {
		design.Description = desc
	}
	ac.Faction.AddUnitDesign(design)
	return success(map[string]any{"design": design.Name, "class": string(design.Class)})
}

type designBuildingHandler struct{}

func (designBuildingHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	name, ok := stringParam(ac, "name")
	if !ok {
		return failure("missing parameter: name")
	}
	typeRaw, ok := stringParam(ac, "type")
	if !ok {
		return failure("missing parameter: type")
	}
	buildingType := game.BuildingType(typeRaw)
	if _, known := game.BuildingTemplateFor(buildingType); !known {
		return failure("unknown building type: " + typeRaw)
	}

	design := game.BuildingDesign{
		Name:               name,
		Type:               buildingType,
		Health:             intParamDefault(ac, "health", 0),
		ProducesClasses:    stringListParam(ac, "produces_classes"),
		ResourceGeneration: costParam(ac, "resource_generation"),
		Abilities:          stringListParam(ac, "abilities"),
		CreationCost:       costParam(ac, "creation_cost"),
	}
	if desc, ok := stringParam(ac, "description"); ok {
		design.Description = desc
	}
	design = game.ApplyBuildingTemplate(design)
	ac.Faction.AddBuildingDesign(design)
	return success(map[string]any{
		"design":    design.Name,
		"type":      string(design.Type),
		"health":    design.Health,
		"abilities": design.Abilities,
	})
}
