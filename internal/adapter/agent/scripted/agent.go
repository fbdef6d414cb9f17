// Package scripted is a deterministic baseline decision maker: it sets up
// a faction, skirmishes with whatever it can see, and keeps production
// running. It exists so the demo binary and tests have a collaborator; it
// is not meant to play well.
package scripted

import (
	"context"
	"time"

	"gridwar/internal/domain/game"
)

type Agent struct {
	ID string
}

func New(id string) *Agent {
	return &Agent{ID: id}
}

func (a *Agent) ProposeActions(_ context.Context, view game.AgentView) ([]game.ProposedAction, error) {
	switch view.Phase {
	case string(game.PhaseSetup):
		return a.setupActions(), nil
	case string(game.PhasePlaying):
		return a.playActions(view), nil
	default:
		return nil, nil
	}
}

func (a *Agent) action(t game.ActionType, reasoning string, params map[string]any) game.ProposedAction {
	return game.ProposedAction{
		Type:       t,
		Parameters: params,
		AgentID:    a.ID,
		Reasoning:  reasoning,
		Timestamp:  time.Now(),
	}
}

func (a *Agent) setupActions() []game.ProposedAction {
	return []game.ProposedAction{
		a.action(game.ActionCreateFaction, "establish a presence on the map", map[string]any{
			"name":        "House " + a.ID,
			"description": "a scripted baseline faction",
		}),
		a.action(game.ActionDesignUnit, "standard line infantry", map[string]any{
			"name":          "Militia",
			"class":         string(game.ClassInfantry),
			"health":        60,
			"attack":        12,
			"defense":       6,
			"speed":         2,
			"sight_range":   3,
			"abilities":     []string{"charge"},
			"creation_cost": map[string]int{game.ResourceGold: 50, game.ResourceFood: 10},
		}),
		a.action(game.ActionDesignUnit, "cheap scouts the town center can train", map[string]any{
			"name":          "Outrider",
			"class":         string(game.ClassScout),
			"health":        30,
			"attack":        5,
			"defense":       2,
			"speed":         4,
			"sight_range":   5,
			"creation_cost": map[string]int{game.ResourceGold: 25, game.ResourceFood: 5},
		}),
		a.action(game.ActionDesignBuilding, "somewhere to train troops", map[string]any{
			"name": "Drill Yard",
			"type": string(game.BuildingBarracks),
		}),
	}
}

// playActions picks up to the action cap: attack anything in reach, keep
// idle units moving toward the nearest visible enemy, and queue production
// at the town center.
func (a *Agent) playActions(view game.AgentView) []game.ProposedAction {
	if view.Faction == nil {
		return nil
	}
	var actions []game.ProposedAction

	enemy := nearestEnemy(view)

	for i := range view.Faction.Units {
		u := &view.Faction.Units[i]
		if len(actions) >= game.DefaultMaxActionsPerTurn-1 {
			break
		}
		if enemy != nil && !u.HasAttacked &&
			game.ManhattanDistance(u.X, u.Y, enemy.X, enemy.Y) <= u.Stats.AttackRange {
			actions = append(actions, a.action(game.ActionAttackUnit, "enemy in range", map[string]any{
				"unit_id":   u.ID,
				"target_id": enemy.UnitID,
			}))
			continue
		}
		if enemy != nil && !u.HasMoved && u.Stats.Attack > 0 {
			x, y := stepToward(u.X, u.Y, enemy.X, enemy.Y, u.Stats.MovementSpeed, view)
			if x != u.X || y != u.Y {
				actions = append(actions, a.action(game.ActionMoveUnit, "close the distance", map[string]any{
					"unit_id": u.ID,
					"x":       x,
					"y":       y,
				}))
			}
			continue
		}
		if enemy == nil && !u.HasMoved && !u.IsFortified && u.Stats.Defense > 0 {
			actions = append(actions, a.action(game.ActionFortifyUnit, "hold position until contact", map[string]any{
				"unit_id": u.ID,
			}))
		}
	}

	if buildingID, designName := productionSite(view); buildingID != "" {
		actions = append(actions, a.action(game.ActionCreateUnit, "reinforce the line", map[string]any{
			"building_id": buildingID,
			"design":      designName,
			"quantity":    1,
		}))
	}
	return actions
}

func nearestEnemy(view game.AgentView) *game.EnemyUnitView {
	if view.Faction == nil || len(view.Faction.Units) == 0 {
		return nil
	}
	home := view.Faction.Units[0]
	var best *game.EnemyUnitView
	bestDist := 1 << 30
	for _, units := range view.VisibleEnemies {
		for i := range units {
			e := &units[i]
			d := game.ManhattanDistance(home.X, home.Y, e.X, e.Y)
			if d < bestDist {
				best = e
				bestDist = d
			}
		}
	}
	return best
}

// stepToward moves up to speed tiles along the axis with the larger gap,
// stopping at the first blocked tile.
func stepToward(x, y, tx, ty, speed int, view game.AgentView) (int, int) {
	for step := 0; step < speed; step++ {
		nx, ny := x, y
		if dx := tx - x; dx != 0 && absInt(dx) >= absInt(ty-y) {
			nx += sign(dx)
		} else if dy := ty - y; dy != 0 {
			ny += sign(dy)
		}
		if nx == x && ny == y {
			break
		}
		if !walkable(view, nx, ny) {
			break
		}
		x, y = nx, ny
	}
	return x, y
}

func walkable(view game.AgentView, x, y int) bool {
	if y < 0 || y >= view.MapHeight || x < 0 || x >= view.MapWidth {
		return false
	}
	t := view.Map[y][x]
	if t.Terrain == string(game.TerrainWater) {
		return false
	}
	if t.Visible && (t.UnitID != "" || t.BuildingID != "") {
		return false
	}
	return true
}

// productionSite picks the first affordable design/building pair, Militia
// preferred, any producible design otherwise.
func productionSite(view game.AgentView) (string, string) {
	names := []string{"Militia"}
	for name := range view.Faction.UnitDesigns {
		if name != "Militia" {
			names = append(names, name)
		}
	}
	for _, name := range names {
		design := view.Faction.UnitDesigns[name]
		if !affordable(view, design.CreationCost) {
			continue
		}
		for _, b := range view.Faction.Buildings {
			if b.ConstructionComplete && b.CanProduceClass(string(design.Class)) {
				return b.ID, name
			}
		}
	}
	return "", ""
}

func affordable(view game.AgentView, baseCost map[string]int) bool {
	cost := game.ScaleCost(baseCost, view.Balance.UnitCostMultiplier)
	for kind, amount := range cost {
		if view.Faction.Resources[kind] < amount {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
