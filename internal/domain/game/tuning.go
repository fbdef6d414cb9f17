package game

import "time"

// Match-level defaults. Most are overridable through StateConfig or the
// server's environment knobs.
const (
	DefaultMapWidth  = 20
	DefaultMapHeight = 20

	MaxPlayers = 4

	DefaultMaxTurns          = 10
	DefaultDecisionTimeout   = 30 * time.Second
	DefaultMaxActionsPerTurn = 5
)

// Design caps. Stats beyond these are rejected at design time, not clamped.
const (
	MaxUnitHealth  = 100
	MaxUnitAttack  = 50
	MaxUnitDefense = 30
	MaxUnitSpeed   = 10

	MaxBuildingHealth = 200

	MaxUnitsPerFaction     = 20
	MaxBuildingsPerFaction = 10
)

// Combat and veterancy.
const (
	MinDamage                  = 1
	FortifiedDefenseMultiplier = 1.5
	WallCoverMultiplier        = 1.5
	AttackExperience           = 10
	VeterancyExpStep           = 100
	LevelUpHealthBonus         = 5
	LevelUpAttackBonus         = 2
	LevelUpDefenseBonus        = 1
	RangeAttackBonus           = 2
)

// Economy and map generation.
const (
	GatherHarvestBase = 5

	ResourceNodeChance = 0.10
	ResourceNodeMin    = 50
	ResourceNodeMax    = 200

	EventLogLimit = 50
)

// StartingResources returns a fresh stock for a newly created faction.
func StartingResources() map[string]int {
	return map[string]int{
		ResourceGold:  500,
		ResourceWood:  300,
		ResourceFood:  200,
		ResourceStone: 100,
	}
}
