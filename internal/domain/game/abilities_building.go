package game

import "errors"

var errNoBuilding = errors.New("no building in context")

// AutoAttackAbility reports a round-end shot; the state applies it to the
// nearest enemy unit in range.
type AutoAttackAbility struct {
	Damage int
	Range  int
}

func (AutoAttackAbility) Type() AbilityType   { return AbilityOnTurn }
func (AutoAttackAbility) Description() string { return "fires on the nearest enemy unit in range each round" }

func (a AutoAttackAbility) CanApply(ctx *AbilityContext) bool {
	return ctx.Phase == ContextEndTurn && ctx.Building != nil &&
		ctx.Building.ConstructionComplete && !ctx.Building.Destroyed()
}

func (a AutoAttackAbility) Apply(ctx *AbilityContext) (Effect, error) {
	if ctx.Building == nil {
		return nil, errNoBuilding
	}
	return Effect{"damage": a.Damage, "range": a.Range}, nil
}

// HealAuraAbility reports round-end healing for nearby friendly units; the
// state applies it.
type HealAuraAbility struct {
	Amount int
	Radius int
}

func (HealAuraAbility) Type() AbilityType   { return AbilityOnTurn }
func (HealAuraAbility) Description() string { return "heals friendly units near the building each round" }

func (h HealAuraAbility) CanApply(ctx *AbilityContext) bool {
	return ctx.Phase == ContextEndTurn && ctx.Building != nil &&
		ctx.Building.ConstructionComplete && !ctx.Building.Destroyed()
}

func (h HealAuraAbility) Apply(ctx *AbilityContext) (Effect, error) {
	if ctx.Building == nil {
		return nil, errNoBuilding
	}
	return Effect{"heal": h.Amount, "radius": h.Radius}, nil
}
