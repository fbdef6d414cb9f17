package game

import "testing"

func productionFixture(t *testing.T) (*State, *Faction, *Building) {
	t.Helper()
	st := flatState(t, 10, 10)
	f := enroll(st, "a1", "North")
	f.Resources = map[string]int{ResourceGold: 500, ResourceWood: 300, ResourceFood: 200, ResourceStone: 100}
	f.AddUnitDesign(UnitDesign{
		Name:         "Worker",
		Class:        ClassWorker,
		Stats:        mustStats(t, 30, 2, 1, 2, 1, 2),
		CreationCost: map[string]int{ResourceGold: 50},
	})
	b := erect(t, st, f, BuildingTownCenter, 5, 5, BuildingDesign{
		Name: "Town Center", Type: BuildingTownCenter, Health: 200,
		ProducesClasses: []string{string(ClassWorker)},
	})
	return st, f, b
}

func TestProduceUnits_ChargesOnceAndPlacesAdjacent(t *testing.T) {
	st, f, b := productionFixture(t)

	report := st.ProduceUnits(f, b, "Worker", 3)
	if !report.Success {
		t.Fatalf("production rejected: %s", report.Reason)
	}
	if report.Created != 3 {
		t.Fatalf("created = %d, want 3", report.Created)
	}
	if f.Resources[ResourceGold] != 350 {
		t.Fatalf("gold = %d, want 350", f.Resources[ResourceGold])
	}
	if len(report.Refund) != 0 {
		t.Fatalf("unexpected refund %v", report.Refund)
	}
	for _, id := range report.UnitIDs {
		u := f.UnitByID(id)
		if u == nil {
			t.Fatalf("produced unit %s missing from faction", id)
		}
		if ManhattanDistance(u.X, u.Y, b.X, b.Y) > 2 {
			t.Fatalf("unit at (%d,%d) not adjacent to building (5,5)", u.X, u.Y)
		}
		if st.Grid[u.Y][u.X].UnitID != u.ID {
			t.Fatalf("tile (%d,%d) not occupied by produced unit", u.X, u.Y)
		}
	}
}

func TestProduceUnits_RefundsExactlyForUnplacedUnits(t *testing.T) {
	st, f, b := productionFixture(t)
	// Block every neighbor except one.
	free := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			tile := st.TileAt(b.X+dx, b.Y+dy)
			if free == 0 {
				free++
				continue
			}
			tile.Terrain = TerrainWater
		}
	}

	report := st.ProduceUnits(f, b, "Worker", 3)
	if !report.Success {
		t.Fatalf("production rejected: %s", report.Reason)
	}
	if report.Created != 1 {
		t.Fatalf("created = %d, want 1", report.Created)
	}
	if report.Refund[ResourceGold] != 100 {
		t.Fatalf("refund = %v, want 100 gold for 2 unplaced units", report.Refund)
	}
	// 500 - 150 + 100 refund = 450
	if f.Resources[ResourceGold] != 450 {
		t.Fatalf("gold = %d, want 450", f.Resources[ResourceGold])
	}
}

func TestProduceUnits_ValidationFailures(t *testing.T) {
	st, f, b := productionFixture(t)

	if report := st.ProduceUnits(f, b, "Worker", 0); report.Success {
		t.Fatal("zero quantity should be rejected")
	}
	if report := st.ProduceUnits(f, b, "Knight", 1); report.Success {
		t.Fatal("unknown design should be rejected")
	}

	f.AddUnitDesign(UnitDesign{
		Name:         "Lancer",
		Class:        ClassCavalry,
		Stats:        mustStats(t, 60, 15, 5, 4, 1, 2),
		CreationCost: map[string]int{ResourceGold: 100},
	})
	if report := st.ProduceUnits(f, b, "Lancer", 1); report.Success {
		t.Fatal("class outside the building's production list should be rejected")
	}

	f.Resources[ResourceGold] = 40
	if report := st.ProduceUnits(f, b, "Worker", 1); report.Success {
		t.Fatal("unaffordable production should be rejected")
	}
	if f.Resources[ResourceGold] != 40 {
		t.Fatal("rejected production must not charge")
	}

	b.ConstructionComplete = false
	f.Resources[ResourceGold] = 500
	if report := st.ProduceUnits(f, b, "Worker", 1); report.Success {
		t.Fatal("incomplete building should not produce")
	}
}

func TestProduceUnits_CostScalesWithBalance(t *testing.T) {
	st, f, b := productionFixture(t)
	st.Balance.UnitCostMultiplier = 2.0

	report := st.ProduceUnits(f, b, "Worker", 1)
	if !report.Success {
		t.Fatalf("production rejected: %s", report.Reason)
	}
	if f.Resources[ResourceGold] != 400 {
		t.Fatalf("gold = %d, want 400 with doubled unit cost", f.Resources[ResourceGold])
	}
}
