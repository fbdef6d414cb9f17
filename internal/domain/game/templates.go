package game

// BuildingTemplate carries the per-type defaults a design falls back to,
// plus the abilities the type grants whether or not the designer asked.
type BuildingTemplate struct {
	Description        string
	Health             int
	ProducesClasses    []string
	ResourceGeneration map[string]int
	InherentAbilities  []string
	DefaultCost        map[string]int
}

var buildingTemplates = map[BuildingType]BuildingTemplate{
	BuildingTownCenter: {
		Description:        "faction heart, produces workers and trickles gold",
		Health:             200,
		ProducesClasses:    []string{string(ClassWorker), string(ClassScout)},
		ResourceGeneration: map[string]int{ResourceGold: 10},
		DefaultCost:        map[string]int{ResourceGold: 400, ResourceWood: 200, ResourceStone: 100},
	},
	BuildingBarracks: {
		Description:     "trains combat units",
		Health:          150,
		ProducesClasses: []string{string(ClassInfantry), string(ClassCavalry), string(ClassRanged)},
		DefaultCost:     map[string]int{ResourceGold: 150, ResourceWood: 100},
	},
	BuildingFarm: {
		Description:        "generates food each round",
		Health:             80,
		ResourceGeneration: map[string]int{ResourceFood: 15},
		DefaultCost:        map[string]int{ResourceGold: 50, ResourceWood: 50},
	},
	BuildingMine: {
		Description:        "generates gold and stone each round",
		Health:             100,
		ResourceGeneration: map[string]int{ResourceGold: 10, ResourceStone: 10},
		DefaultCost:        map[string]int{ResourceGold: 100, ResourceWood: 50},
	},
	BuildingLumberMill: {
		Description:        "generates wood each round",
		Health:             100,
		ResourceGeneration: map[string]int{ResourceWood: 15},
		DefaultCost:        map[string]int{ResourceGold: 80, ResourceStone: 20},
	},
	BuildingTower: {
		Description:       "fires on the nearest enemy in range each round",
		Health:            120,
		InherentAbilities: []string{"auto_attack"},
		DefaultCost:       map[string]int{ResourceGold: 120, ResourceStone: 80},
	},
	BuildingWall: {
		Description:       "grants cover to adjacent friendly units",
		Health:            180,
		InherentAbilities: []string{"wall"},
		DefaultCost:       map[string]int{ResourceStone: 60, ResourceWood: 20},
	},
	BuildingWorkshop: {
		Description:     "produces siege units",
		Health:          130,
		ProducesClasses: []string{string(ClassArtillery), string(ClassSupport)},
		DefaultCost:     map[string]int{ResourceGold: 200, ResourceWood: 150, ResourceStone: 50},
	},
}

func BuildingTemplateFor(t BuildingType) (BuildingTemplate, bool) {
	tpl, ok := buildingTemplates[t]
	return tpl, ok
}

func BuildingTypes() []BuildingType {
	return []BuildingType{
		BuildingTownCenter, BuildingBarracks, BuildingFarm, BuildingMine,
		BuildingLumberMill, BuildingTower, BuildingWall, BuildingWorkshop,
	}
}

// ApplyBuildingTemplate fills blanks in a design from the type template and
// merges in inherent abilities. Unknown types pass through untouched.
func ApplyBuildingTemplate(d BuildingDesign) BuildingDesign {
	tpl, ok := buildingTemplates[d.Type]
	if !ok {
		return d
	}
	if d.Health <= 0 {
		d.Health = tpl.Health
	}
	if d.Health > MaxBuildingHealth {
		d.Health = MaxBuildingHealth
	}
	if len(d.ProducesClasses) == 0 {
		d.ProducesClasses = append([]string(nil), tpl.ProducesClasses...)
	}
	if len(d.ResourceGeneration) == 0 && tpl.ResourceGeneration != nil {
		d.ResourceGeneration = copyCost(tpl.ResourceGeneration)
	}
	if len(d.CreationCost) == 0 && tpl.DefaultCost != nil {
		d.CreationCost = copyCost(tpl.DefaultCost)
	}
	for _, id := range tpl.InherentAbilities {
		if !containsString(d.Abilities, id) {
			d.Abilities = append(d.Abilities, id)
		}
	}
	return d
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
