package exprcat

import "gridwar/internal/domain/game"

// catalogEntry is one slot in the default catalog: either a data-defined
// ability or a builtin that needs typed logic from the domain package.
// Order matters: the registry executes in registration order, so damage
// modifiers (charge) are listed before consumers of the final damage
// (splash).
type catalogEntry struct {
	id       string
	category game.AbilityCategory
	def      *Definition
	builtin  game.Ability
}

func defaultCatalog() []catalogEntry {
	return []catalogEntry{
		{
			id: "stealth", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:        game.AbilityPassive,
				Description: "harder to spot, enemies see this unit at half sight range",
				Effects:     map[string]any{"stealthed": true},
			},
		},
		{
			id: "heal", category: game.AbilityCategoryUnit,
			builtin: game.HealAbility{Amount: 15},
		},
		{
			id: "build", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:        game.AbilityActive,
				Description: "can raise structures from faction building designs",
				Condition:   `Action == "build_structure"`,
				Effects:     map[string]any{"builder": true},
			},
		},
		{
			id: "gather", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:               game.AbilityOnTurn,
				Description:        "banks double yield when harvesting resource nodes",
				Condition:          `Phase == "end_turn"`,
				ResourceMultiplier: 2.0,
			},
		},
		{
			id: "fortify", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:        game.AbilityActive,
				Description: "can dig in for a defense bonus until it moves",
				Condition:   `Action == "fortify_unit" && !HasMoved`,
				Effects:     map[string]any{"fortified": true},
			},
		},
		{
			id: "charge", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:             game.AbilityOnAttack,
				Description:      "attacks after moving hit 25% harder",
				Condition:        `Action == "attack_unit" && HasMoved`,
				DamageMultiplier: 1.25,
			},
		},
		{
			id: "range_attack", category: game.AbilityCategoryUnit,
			def: &Definition{
				Type:        game.AbilityPassive,
				Description: "attacks reach two tiles further",
				Condition:   `Action == "attack_unit"`,
				Effects:     map[string]any{"range_bonus": game.RangeAttackBonus},
			},
		},
		{
			id: "splash", category: game.AbilityCategoryUnit,
			builtin: game.SplashDamageAbility{Percent: 0.5, Radius: 1},
		},
		{
			id: "auto_attack", category: game.AbilityCategoryBuilding,
			builtin: game.AutoAttackAbility{Damage: 15, Range: 3},
		},
		{
			id: "wall", category: game.AbilityCategoryBuilding,
			def: &Definition{
				Type:        game.AbilityPassive,
				Description: "adjacent friendly units gain cover",
				Effects:     map[string]any{"cover": true},
			},
		},
		{
			id: "heal_aura", category: game.AbilityCategoryBuilding,
			builtin: game.HealAuraAbility{Amount: 10, Radius: 2},
		},
		{
			id: "resource_bonus", category: game.AbilityCategoryBuilding,
			def: &Definition{
				Type:               game.AbilityOnTurn,
				Description:        "round-end resource generation is boosted by half",
				Condition:          `Phase == "end_turn" && ConstructionComplete`,
				ResourceMultiplier: 1.5,
			},
		},
		{
			id: "research", category: game.AbilityCategoryBuilding,
			def: &Definition{
				Type:        game.AbilityPassive,
				Description: "marks the building as a research site",
				Effects:     map[string]any{"research": true},
			},
		},
		{
			id: "train_faster", category: game.AbilityCategoryBuilding,
			def: &Definition{
				Type:        game.AbilityPassive,
				Description: "marks the building as a rapid training site",
				Effects:     map[string]any{"train_faster": true},
			},
		},
	}
}

// DefaultRegistry assembles the standard ability catalog: data-defined
// abilities compiled from expr conditions interleaved with the domain
// builtins, in precedence order.
func DefaultRegistry() (*game.Registry, error) {
	reg := game.NewRegistry()
	for _, entry := range defaultCatalog() {
		if entry.builtin != nil {
			reg.Register(entry.id, entry.category, entry.builtin)
			continue
		}
		def := *entry.def
		def.ID = entry.id
		def.Category = entry.category
		ability, err := compile(def)
		if err != nil {
			return nil, err
		}
		reg.Register(entry.id, entry.category, ability)
	}
	return reg, nil
}
