package game

import "testing"

// flatState builds a small all-plains board with no resource nodes so
// combat and movement tests are position-deterministic.
func flatState(t *testing.T, width, height int) *State {
	t.Helper()
	st := NewState(StateConfig{Width: width, Height: height, Seed: 7})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			st.Grid[y][x] = NewTile(x, y, TerrainPlains)
		}
	}
	return st
}

// enroll registers a faction without the random starting placement.
func enroll(st *State, agentID, name string) *Faction {
	f := NewFaction(agentID, name, Theme{})
	st.Factions[agentID] = f
	st.TurnOrder = append(st.TurnOrder, agentID)
	return f
}

// deploy creates a unit, adds it to the faction, and occupies its tile.
func deploy(t *testing.T, st *State, f *Faction, name string, x, y int, stats Stats, abilities ...string) *Unit {
	t.Helper()
	u := NewUnit(name, ClassInfantry, f.AgentID, x, y, stats, abilities)
	if !f.AddUnit(u) {
		t.Fatalf("deploy %s: faction full", name)
	}
	if !st.Grid[y][x].PlaceUnit(u.ID) {
		t.Fatalf("deploy %s: tile (%d,%d) occupied", name, x, y)
	}
	return u
}

// erect places a completed building from a bare design.
func erect(t *testing.T, st *State, f *Faction, typ BuildingType, x, y int, design BuildingDesign) *Building {
	t.Helper()
	b := NewBuilding(design.Name, typ, f.AgentID, x, y, design)
	if !f.AddBuilding(b) {
		t.Fatalf("erect %s: faction full", design.Name)
	}
	if !st.Grid[y][x].PlaceBuilding(b.ID) {
		t.Fatalf("erect %s: tile (%d,%d) occupied", design.Name, x, y)
	}
	return b
}
