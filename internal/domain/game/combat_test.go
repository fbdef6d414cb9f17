package game

import "testing"

func combatPair(t *testing.T, attackerStats, targetStats Stats) (*State, *Unit, *Unit) {
	t.Helper()
	st := flatState(t, 10, 10)
	a := enroll(st, "a1", "North")
	b := enroll(st, "a2", "South")
	attacker := deploy(t, st, a, "Attacker", 4, 4, attackerStats)
	target := deploy(t, st, b, "Target", 5, 4, targetStats)
	return st, attacker, target
}

func TestAttack_DamageIsAttackMinusDefense(t *testing.T) {
	st, attacker, target := combatPair(t,
		mustStats(t, 60, 15, 5, 2, 1, 2),
		mustStats(t, 40, 10, 5, 2, 1, 2),
	)
	svc := CombatService{Registry: NewRegistry()}

	report := svc.Attack(st, attacker, target)
	if !report.Success {
		t.Fatalf("attack rejected: %s", report.Reason)
	}
	if report.DamageDealt != 10 {
		t.Fatalf("damage = %d, want 10", report.DamageDealt)
	}
	if target.Stats.Health != 30 {
		t.Fatalf("target health = %d, want 30", target.Stats.Health)
	}
	if !attacker.HasAttacked {
		t.Fatal("attacker should be marked as having attacked")
	}
	if attacker.Experience != AttackExperience {
		t.Fatalf("xp = %d, want %d", attacker.Experience, AttackExperience)
	}
}

func TestAttack_FortifiedTargetScalesDefense(t *testing.T) {
	st, attacker, target := combatPair(t,
		mustStats(t, 60, 20, 5, 2, 1, 2),
		mustStats(t, 40, 10, 10, 2, 1, 2),
	)
	if !target.Fortify() {
		t.Fatal("target should fortify")
	}
	svc := CombatService{Registry: NewRegistry()}

	report := svc.Attack(st, attacker, target)
	// defense 10 * 1.5 = 15, damage 20 - 15 = 5
	if report.DamageDealt != 5 {
		t.Fatalf("damage = %d, want 5", report.DamageDealt)
	}
}

func TestAttack_DamageNeverBelowFloor(t *testing.T) {
	st, attacker, target := combatPair(t,
		mustStats(t, 60, 5, 5, 2, 1, 2),
		mustStats(t, 40, 10, MaxUnitDefense, 2, 1, 2),
	)
	svc := CombatService{Registry: NewRegistry()}

	report := svc.Attack(st, attacker, target)
	if report.DamageDealt != MinDamage {
		t.Fatalf("damage = %d, want floor %d", report.DamageDealt, MinDamage)
	}
}

func TestAttack_RejectsOutOfRangeAndRepeatAttacks(t *testing.T) {
	st := flatState(t, 10, 10)
	a := enroll(st, "a1", "North")
	b := enroll(st, "a2", "South")
	attacker := deploy(t, st, a, "Attacker", 1, 1, mustStats(t, 60, 15, 5, 2, 1, 2))
	near := deploy(t, st, b, "Near", 2, 1, mustStats(t, 40, 10, 5, 2, 1, 2))
	far := deploy(t, st, b, "Far", 5, 5, mustStats(t, 40, 10, 5, 2, 1, 2))
	svc := CombatService{Registry: NewRegistry()}

	if report := svc.Attack(st, attacker, far); report.Success {
		t.Fatal("attack beyond range should be rejected")
	}
	if report := svc.Attack(st, attacker, near); !report.Success {
		t.Fatalf("attack in range rejected: %s", report.Reason)
	}
	if report := svc.Attack(st, attacker, near); report.Success {
		t.Fatal("second attack in the same turn should be rejected")
	}
}

func TestAttack_WallCoverScalesDefense(t *testing.T) {
	st, attacker, target := combatPair(t,
		mustStats(t, 60, 20, 5, 2, 1, 2),
		mustStats(t, 40, 10, 10, 2, 1, 2),
	)
	owner := st.FactionFor(target.OwnerID)
	erect(t, st, owner, BuildingWall, 5, 5, BuildingDesign{
		Name: "Wall", Type: BuildingWall, Health: 100, Abilities: []string{"wall"},
	})
	svc := CombatService{Registry: NewRegistry()}

	report := svc.Attack(st, attacker, target)
	// defense 10 * 1.5 cover = 15, damage 20 - 15 = 5
	if report.DamageDealt != 5 {
		t.Fatalf("damage = %d, want 5", report.DamageDealt)
	}
}

func TestAttack_RangeAttackExtendsReach(t *testing.T) {
	st := flatState(t, 10, 10)
	a := enroll(st, "a1", "North")
	b := enroll(st, "a2", "South")
	archer := deploy(t, st, a, "Archer", 1, 1, mustStats(t, 40, 12, 3, 2, 1, 3), "range_attack")
	target := deploy(t, st, b, "Target", 4, 1, mustStats(t, 40, 10, 5, 2, 1, 2))
	svc := CombatService{Registry: NewRegistry()}

	if report := svc.Attack(st, archer, target); !report.Success {
		t.Fatalf("range 1 + bonus 2 should reach distance 3: %s", report.Reason)
	}
}

func TestAttack_SplashSpillsOntoNeighbors(t *testing.T) {
	st := flatState(t, 10, 10)
	a := enroll(st, "a1", "North")
	b := enroll(st, "a2", "South")
	attacker := deploy(t, st, a, "Bombard", 4, 4, mustStats(t, 60, 20, 5, 2, 1, 2), "splash")
	target := deploy(t, st, b, "Target", 5, 4, mustStats(t, 40, 10, 2, 2, 1, 2))
	bystander := deploy(t, st, b, "Bystander", 5, 5, mustStats(t, 40, 10, 2, 2, 1, 2))
	tough := deploy(t, st, b, "Tough", 6, 4, mustStats(t, 40, 10, 30, 2, 1, 2))

	reg := NewRegistry()
	reg.Register("splash", AbilityCategoryUnit, SplashDamageAbility{Percent: 0.5, Radius: 1})
	svc := CombatService{Registry: reg}

	report := svc.Attack(st, attacker, target)
	if !report.Success {
		t.Fatalf("attack rejected: %s", report.Reason)
	}
	// primary: 20 - 2 = 18; splash: int(20*0.5)=10, bystander 10-2=8
	if report.DamageDealt != 18 {
		t.Fatalf("primary damage = %d, want 18", report.DamageDealt)
	}
	if len(report.SplashHits) != 1 {
		t.Fatalf("splash hits = %d, want 1 (tough unit absorbs fully)", len(report.SplashHits))
	}
	if report.SplashHits[0].UnitID != bystander.ID || report.SplashHits[0].Damage != 8 {
		t.Fatalf("splash hit = %+v, want bystander for 8", report.SplashHits[0])
	}
	if bystander.Stats.Health != 32 {
		t.Fatalf("bystander health = %d, want 32", bystander.Stats.Health)
	}
	if tough.Stats.Health != 40 {
		t.Fatal("high-defense bystander should absorb splash entirely")
	}
}
