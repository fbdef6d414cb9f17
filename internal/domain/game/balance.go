package game

// Balance holds the match-wide multipliers an admin reviewer may adjust
// during the balancing phase. All values default to 1.0.
type Balance struct {
	UnitCostMultiplier           float64 `json:"unit_cost_multiplier"`
	BuildingCostMultiplier       float64 `json:"building_cost_multiplier"`
	ResourceGenerationMultiplier float64 `json:"resource_generation_multiplier"`
	CombatDamageMultiplier       float64 `json:"combat_damage_multiplier"`
	MovementSpeedMultiplier      float64 `json:"movement_speed_multiplier"`
}

func DefaultBalance() Balance {
	return Balance{
		UnitCostMultiplier:           1.0,
		BuildingCostMultiplier:       1.0,
		ResourceGenerationMultiplier: 1.0,
		CombatDamageMultiplier:       1.0,
		MovementSpeedMultiplier:      1.0,
	}
}

// Apply overlays named adjustments onto the record. Unknown keys and
// non-positive values are ignored.
func (b *Balance) Apply(adjustments map[string]float64) {
	for key, v := range adjustments {
		if v <= 0 {
			continue
		}
		switch key {
		case "unit_cost_multiplier":
			b.UnitCostMultiplier = v
		case "building_cost_multiplier":
			b.BuildingCostMultiplier = v
		case "resource_generation_multiplier":
			b.ResourceGenerationMultiplier = v
		case "combat_damage_multiplier":
			b.CombatDamageMultiplier = v
		case "movement_speed_multiplier":
			b.MovementSpeedMultiplier = v
		}
	}
}

// ScaleCost applies a cost multiplier to every resource entry, truncating
// toward zero the way all cost math does.
func ScaleCost(cost map[string]int, mult float64) map[string]int {
	out := make(map[string]int, len(cost))
	for k, v := range cost {
		out[k] = int(float64(v) * mult)
	}
	return out
}

// MultiplyCost returns cost × qty without mutating the input.
func MultiplyCost(cost map[string]int, qty int) map[string]int {
	out := make(map[string]int, len(cost))
	for k, v := range cost {
		out[k] = v * qty
	}
	return out
}
