package game

import "testing"

func TestApplyBuildingTemplate_FillsDefaults(t *testing.T) {
	d := ApplyBuildingTemplate(BuildingDesign{Name: "Keep", Type: BuildingTownCenter})
	if d.Health != 200 {
		t.Fatalf("health = %d, want the template's 200", d.Health)
	}
	if len(d.ProducesClasses) == 0 {
		t.Fatal("production classes should come from the template")
	}
	if d.ResourceGeneration[ResourceGold] != 10 {
		t.Fatalf("generation = %v", d.ResourceGeneration)
	}
	if len(d.CreationCost) == 0 {
		t.Fatal("creation cost should come from the template")
	}
}

func TestApplyBuildingTemplate_KeepsDesignerValues(t *testing.T) {
	d := ApplyBuildingTemplate(BuildingDesign{
		Name:         "Cheap Farm",
		Type:         BuildingFarm,
		Health:       40,
		CreationCost: map[string]int{ResourceWood: 10},
	})
	if d.Health != 40 {
		t.Fatalf("health = %d, designer value should win", d.Health)
	}
	if d.CreationCost[ResourceWood] != 10 {
		t.Fatalf("cost = %v, designer value should win", d.CreationCost)
	}
}

func TestApplyBuildingTemplate_MergesInherentAbilities(t *testing.T) {
	d := ApplyBuildingTemplate(BuildingDesign{Name: "Spike Wall", Type: BuildingWall})
	if !containsString(d.Abilities, "wall") {
		t.Fatalf("abilities = %v, want inherent wall", d.Abilities)
	}
	d2 := ApplyBuildingTemplate(BuildingDesign{
		Name: "Watchtower", Type: BuildingTower, Abilities: []string{"auto_attack"},
	})
	count := 0
	for _, id := range d2.Abilities {
		if id == "auto_attack" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("inherent ability duplicated: %v", d2.Abilities)
	}
}

func TestApplyBuildingTemplate_CapsHealth(t *testing.T) {
	d := ApplyBuildingTemplate(BuildingDesign{
		Name: "Bastion", Type: BuildingWall, Health: MaxBuildingHealth + 100,
	})
	if d.Health != MaxBuildingHealth {
		t.Fatalf("health = %d, want cap %d", d.Health, MaxBuildingHealth)
	}
}

func TestApplyBuildingTemplate_UnknownTypePassesThrough(t *testing.T) {
	in := BuildingDesign{Name: "Odd", Type: BuildingType("ziggurat"), Health: 50}
	if out := ApplyBuildingTemplate(in); out.Health != 50 || len(out.Abilities) != 0 {
		t.Fatalf("unknown type should pass through, got %+v", out)
	}
}
