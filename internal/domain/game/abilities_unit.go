package game

import "errors"

// Builtin abilities that need typed access to the context. The rest of the
// catalog is data-defined in the exprcat adapter.

var errNoTarget = errors.New("no target in context")

// HealAbility restores health to the target unit (or the acting unit when
// no target is set).
type HealAbility struct {
	Amount int
}

func (HealAbility) Type() AbilityType   { return AbilityActive }
func (HealAbility) Description() string { return "restores health to a damaged friendly unit" }

func (h HealAbility) CanApply(ctx *AbilityContext) bool {
	// Never during an attack: the context target there is an enemy.
	if ctx.Action == ActionAttackUnit {
		return false
	}
	t := h.patient(ctx)
	return t != nil && t.Alive() && t.Stats.Health < t.Stats.MaxHealth
}

func (h HealAbility) Apply(ctx *AbilityContext) (Effect, error) {
	t := h.patient(ctx)
	if t == nil {
		return nil, errNoTarget
	}
	healed := t.Heal(h.Amount)
	return Effect{"healed": healed, "unit_id": t.ID}, nil
}

func (h HealAbility) patient(ctx *AbilityContext) *Unit {
	if ctx.Target != nil {
		return ctx.Target
	}
	return ctx.Unit
}

// SplashDamageAbility reports collateral damage around the attack target.
// The amount is computed from the working damage after earlier abilities
// (charge and friends) have adjusted it; the combat service applies it.
type SplashDamageAbility struct {
	Percent float64
	Radius  int
}

func (SplashDamageAbility) Type() AbilityType { return AbilityOnAttack }
func (SplashDamageAbility) Description() string {
	return "attacks spill reduced damage onto units near the target"
}

func (s SplashDamageAbility) CanApply(ctx *AbilityContext) bool {
	return ctx.Action == ActionAttackUnit && ctx.Target != nil && ctx.BaseDamage > 0
}

func (s SplashDamageAbility) Apply(ctx *AbilityContext) (Effect, error) {
	damage := int(float64(ctx.BaseDamage) * s.Percent)
	if damage < 1 {
		damage = 1
	}
	radius := s.Radius
	if radius < 1 {
		radius = 1
	}
	return Effect{"splash_damage": damage, "radius": radius}, nil
}
