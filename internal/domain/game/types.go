package game

import "time"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDistance is the metric for range, sight and adjacency checks.
func ManhattanDistance(ax, ay, bx, by int) int {
	return abs(ax-bx) + abs(ay-by)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type TerrainType string

const (
	TerrainPlains   TerrainType = "plains"
	TerrainForest   TerrainType = "forest"
	TerrainWater    TerrainType = "water"
	TerrainMountain TerrainType = "mountain"
	TerrainDesert   TerrainType = "desert"
)

// TerrainMovementCost is informational for decision makers; water is
// impassable for land units and never entered.
var TerrainMovementCost = map[TerrainType]int{
	TerrainPlains:   1,
	TerrainForest:   2,
	TerrainWater:    999,
	TerrainMountain: 3,
	TerrainDesert:   2,
}

type GamePhase string

const (
	PhaseSetup     GamePhase = "setup"
	PhaseBalancing GamePhase = "balancing"
	PhasePlaying   GamePhase = "playing"
	PhaseEnded     GamePhase = "ended"
)

// phaseRank orders phases; transitions are monotonic and never go backward.
func phaseRank(p GamePhase) int {
	switch p {
	case PhaseSetup:
		return 0
	case PhaseBalancing:
		return 1
	case PhasePlaying:
		return 2
	case PhaseEnded:
		return 3
	default:
		return -1
	}
}

type VictoryCondition string

const (
	VictoryElimination VictoryCondition = "elimination"
	VictoryResource    VictoryCondition = "resource"
	VictoryTerritory   VictoryCondition = "territory"
	VictoryTimeLimit   VictoryCondition = "time_limit"
)

const (
	ResourceGold  = "gold"
	ResourceWood  = "wood"
	ResourceFood  = "food"
	ResourceStone = "stone"
)

func ResourceKinds() []string {
	return []string{ResourceGold, ResourceWood, ResourceFood, ResourceStone}
}

type ActionType string

const (
	ActionCreateFaction  ActionType = "create_faction"
	ActionDesignUnit     ActionType = "design_unit"
	ActionDesignBuilding ActionType = "design_building"
	ActionMoveUnit       ActionType = "move_unit"
	ActionAttackUnit     ActionType = "attack_unit"
	ActionBuildStructure ActionType = "build_structure"
	ActionCreateUnit     ActionType = "create_unit"
	ActionFortifyUnit    ActionType = "fortify_unit"
	ActionSendMessage    ActionType = "send_message"
)

// ProposedAction is an unvalidated request submitted by a decision maker
// for one agent's turn.
type ProposedAction struct {
	Type       ActionType     `json:"action_type"`
	Parameters map[string]any `json:"parameters"`
	AgentID    string         `json:"agent_id"`
	Reasoning  string         `json:"reasoning,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ActionResult is what a processor reports for a single executed action.
// Critical signals that the remaining actions in the same turn must be
// abandoned; the round still advances to the next agent.
type ActionResult struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Critical bool           `json:"critical,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
}

type Event struct {
	Type       string         `json:"type"`
	Turn       int            `json:"turn"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}
