package game

// CombatService resolves unit attacks. It owns no state beyond the ability
// registry; balance and board come from the match state per call.
type CombatService struct {
	Registry *Registry
}

type SplashHit struct {
	UnitID    string `json:"unit_id"`
	Damage    int    `json:"damage"`
	Destroyed bool   `json:"destroyed"`
}

type AttackReport struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`

	DamageDealt     int  `json:"damage_dealt"`
	TargetHealth    int  `json:"target_remaining_health"`
	TargetDestroyed bool `json:"target_destroyed"`
	LeveledUp       bool `json:"leveled_up,omitempty"`

	SplashHits       []SplashHit `json:"splash_hits,omitempty"`
	AbilitiesApplied []string    `json:"abilities_applied,omitempty"`
}

// Attack resolves one attack. Only the attacker's abilities execute;
// defensive posture (fortification, wall cover) is folded into the working
// defense before the ability pass. Damage never drops below the floor.
// The caller removes destroyed units from the board.
func (c CombatService) Attack(st *State, attacker, target *Unit) AttackReport {
	if !attacker.Alive() {
		return AttackReport{Reason: "attacker is dead"}
	}
	if !target.Alive() {
		return AttackReport{Reason: "target is already dead"}
	}
	if attacker.HasAttacked {
		return AttackReport{Reason: "unit has already attacked this turn"}
	}
	if attacker.OwnerID == target.OwnerID {
		return AttackReport{Reason: "cannot attack own unit"}
	}

	dist := ManhattanDistance(attacker.X, attacker.Y, target.X, target.Y)
	if dist > c.effectiveRange(attacker) {
		return AttackReport{Reason: "target out of range"}
	}

	base := int(float64(attacker.Stats.Attack) * st.Balance.CombatDamageMultiplier)
	defense := c.effectiveDefense(st, target)

	ctx := &AbilityContext{
		Unit:        attacker,
		Target:      target,
		State:       st,
		Action:      ActionAttackUnit,
		Phase:       ContextGameplay,
		BaseDamage:  base,
		BaseDefense: defense,
		Distance:    dist,
		TurnNumber:  st.TurnNumber,
	}
	abilityReport := c.Registry.Execute(attacker.Abilities, ctx)

	damage := ctx.BaseDamage - ctx.BaseDefense
	if damage < MinDamage {
		damage = MinDamage
	}
	target.TakeDamage(damage)
	attacker.HasAttacked = true
	leveled := attacker.GainExperience(AttackExperience)

	report := AttackReport{
		Success:          true,
		DamageDealt:      damage,
		TargetHealth:     target.Stats.Health,
		TargetDestroyed:  !target.Alive(),
		LeveledUp:        leveled,
		AbilitiesApplied: abilityReport.Applied,
	}
	if effect, ok := abilityReport.Effects["splash"]; ok {
		report.SplashHits = c.applySplash(st, attacker, target, effect)
	}
	return report
}

func (c CombatService) effectiveRange(attacker *Unit) int {
	r := attacker.Stats.AttackRange
	if attacker.HasAbility("range_attack") {
		r += RangeAttackBonus
	}
	return r
}

// effectiveDefense scales the target's defense for fortification and for
// cover from an adjacent friendly building with the wall ability. Both
// scalings truncate toward zero.
func (c CombatService) effectiveDefense(st *State, target *Unit) int {
	defense := target.Stats.Defense
	if target.IsFortified {
		defense = int(float64(defense) * FortifiedDefenseMultiplier)
	}
	if c.adjacentWallCover(st, target) {
		defense = int(float64(defense) * WallCoverMultiplier)
	}
	return defense
}

func (c CombatService) adjacentWallCover(st *State, target *Unit) bool {
	owner := st.FactionFor(target.OwnerID)
	if owner == nil {
		return false
	}
	for _, b := range owner.Buildings {
		if b.Destroyed() || !b.HasAbility("wall") {
			continue
		}
		if ManhattanDistance(b.X, b.Y, target.X, target.Y) == 1 {
			return true
		}
	}
	return false
}

// applySplash spreads the reported collateral damage to enemy units around
// the primary target. Unlike the primary hit, splash can be fully absorbed
// by defense.
func (c CombatService) applySplash(st *State, attacker, target *Unit, effect Effect) []SplashHit {
	splashDamage, _ := effect["splash_damage"].(int)
	radius, _ := effect["radius"].(int)
	if splashDamage <= 0 || radius <= 0 {
		return nil
	}
	var hits []SplashHit
	for _, agentID := range st.TurnOrder {
		if agentID == attacker.OwnerID {
			continue
		}
		for _, u := range st.Factions[agentID].Units {
			if u.ID == target.ID || !u.Alive() {
				continue
			}
			if ManhattanDistance(u.X, u.Y, target.X, target.Y) > radius {
				continue
			}
			dmg := splashDamage - u.Stats.Defense
			if dmg <= 0 {
				continue
			}
			u.TakeDamage(dmg)
			hits = append(hits, SplashHit{UnitID: u.ID, Damage: dmg, Destroyed: !u.Alive()})
		}
	}
	return hits
}
