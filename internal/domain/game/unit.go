package game

import (
	"fmt"

	"github.com/google/uuid"
)

type UnitClass string

const (
	ClassInfantry  UnitClass = "infantry"
	ClassCavalry   UnitClass = "cavalry"
	ClassRanged    UnitClass = "ranged"
	ClassArtillery UnitClass = "artillery"
	ClassSupport   UnitClass = "support"
	ClassWorker    UnitClass = "worker"
	ClassScout     UnitClass = "scout"
)

// Stats is the per-unit combat profile. Construct through NewStats so the
// design caps are enforced at the boundary.
type Stats struct {
	Health        int `json:"health"`
	MaxHealth     int `json:"max_health"`
	Attack        int `json:"attack"`
	Defense       int `json:"defense"`
	MovementSpeed int `json:"movement_speed"`
	AttackRange   int `json:"attack_range"`
	SightRange    int `json:"sight_range"`
}

func NewStats(health, attack, defense, speed, attackRange, sightRange int) (Stats, error) {
	if health <= 0 {
		return Stats{}, fmt.Errorf("health must be positive, got %d", health)
	}
	if health > MaxUnitHealth {
		return Stats{}, fmt.Errorf("health %d exceeds cap %d", health, MaxUnitHealth)
	}
	if attack < 0 || attack > MaxUnitAttack {
		return Stats{}, fmt.Errorf("attack %d outside [0,%d]", attack, MaxUnitAttack)
	}
	if defense < 0 || defense > MaxUnitDefense {
		return Stats{}, fmt.Errorf("defense %d outside [0,%d]", defense, MaxUnitDefense)
	}
	if speed < 1 || speed > MaxUnitSpeed {
		return Stats{}, fmt.Errorf("movement speed %d outside [1,%d]", speed, MaxUnitSpeed)
	}
	if attackRange < 1 {
		attackRange = 1
	}
	if sightRange < 1 {
		sightRange = 1
	}
	return Stats{
		Health:        health,
		MaxHealth:     health,
		Attack:        attack,
		Defense:       defense,
		MovementSpeed: speed,
		AttackRange:   attackRange,
		SightRange:    sightRange,
	}, nil
}

// Unit is a mobile entity owned by one faction. Turn flags reset at the
// round boundary; fortification persists until the unit moves.
type Unit struct {
	ID      string    `json:"unit_id"`
	Name    string    `json:"name"`
	Class   UnitClass `json:"class"`
	OwnerID string    `json:"owner_id"`

	X int `json:"x"`
	Y int `json:"y"`

	Stats Stats `json:"stats"`

	Abilities []string `json:"abilities"`

	Experience int `json:"experience"`
	Level      int `json:"level"`

	HasMoved    bool `json:"has_moved"`
	HasAttacked bool `json:"has_attacked"`
	IsFortified bool `json:"is_fortified"`

	// StatusEffects maps effect name to remaining rounds.
	StatusEffects map[string]int `json:"status_effects,omitempty"`

	CreationCost map[string]int `json:"creation_cost,omitempty"`
}

func NewUnit(name string, class UnitClass, ownerID string, x, y int, stats Stats, abilities []string) *Unit {
	return &Unit{
		ID:            uuid.NewString(),
		Name:          name,
		Class:         class,
		OwnerID:       ownerID,
		X:             x,
		Y:             y,
		Stats:         stats,
		Abilities:     append([]string(nil), abilities...),
		StatusEffects: make(map[string]int),
	}
}

func (u *Unit) Alive() bool {
	return u.Stats.Health > 0
}

func (u *Unit) CanMove() bool {
	return u.Alive() && !u.HasMoved
}

func (u *Unit) CanAttack() bool {
	return u.Alive() && !u.HasAttacked
}

func (u *Unit) HasAbility(id string) bool {
	for _, a := range u.Abilities {
		if a == id {
			return true
		}
	}
	return false
}

// MoveTo relocates the unit if the step is within its speed budget.
// Moving breaks fortification.
func (u *Unit) MoveTo(x, y, maxDistance int) bool {
	if !u.CanMove() {
		return false
	}
	if ManhattanDistance(u.X, u.Y, x, y) > maxDistance {
		return false
	}
	u.X = x
	u.Y = y
	u.HasMoved = true
	u.IsFortified = false
	return true
}

func (u *Unit) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	u.Stats.Health -= amount
	if u.Stats.Health < 0 {
		u.Stats.Health = 0
	}
}

func (u *Unit) Heal(amount int) int {
	if !u.Alive() || amount <= 0 {
		return 0
	}
	missing := u.Stats.MaxHealth - u.Stats.Health
	if amount > missing {
		amount = missing
	}
	u.Stats.Health += amount
	return amount
}

func (u *Unit) Fortify() bool {
	if !u.Alive() || u.HasMoved {
		return false
	}
	u.IsFortified = true
	return true
}

// GainExperience adds XP and resolves at most one level per call.
// Veterancy starts at level 0; the threshold for leaving level L is
// (L+1)*100, so the first level-up lands at 100 XP.
func (u *Unit) GainExperience(amount int) bool {
	if amount <= 0 || !u.Alive() {
		return false
	}
	u.Experience += amount
	required := (u.Level + 1) * VeterancyExpStep
	if u.Experience < required {
		return false
	}
	u.levelUp()
	return true
}

func (u *Unit) levelUp() {
	u.Level++
	u.Stats.MaxHealth += LevelUpHealthBonus
	u.Stats.Health += LevelUpHealthBonus
	if u.Stats.Health > u.Stats.MaxHealth {
		u.Stats.Health = u.Stats.MaxHealth
	}
	u.Stats.Attack += LevelUpAttackBonus
	u.Stats.Defense += LevelUpDefenseBonus
}

// ResetTurn clears the per-round action flags and ticks status effects.
// Fortification is not a turn flag and survives the reset.
func (u *Unit) ResetTurn() {
	u.HasMoved = false
	u.HasAttacked = false
	for name, left := range u.StatusEffects {
		left--
		if left <= 0 {
			delete(u.StatusEffects, name)
		} else {
			u.StatusEffects[name] = left
		}
	}
}
