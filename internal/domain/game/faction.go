package game

import "github.com/google/uuid"

// Theme is free-form flavor recorded at faction creation.
type Theme struct {
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Motto       string `json:"motto,omitempty"`
}

// UnitDesign is a faction-authored blueprint units are produced from.
type UnitDesign struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Class        UnitClass      `json:"class"`
	Stats        Stats          `json:"stats"`
	Abilities    []string       `json:"abilities,omitempty"`
	CreationCost map[string]int `json:"creation_cost"`
}

// BuildingDesign is a faction-authored blueprint for structures. Template
// defaults for the building type fill any fields the designer left empty.
type BuildingDesign struct {
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Type               BuildingType   `json:"type"`
	Health             int            `json:"health"`
	ProducesClasses    []string       `json:"produces_classes,omitempty"`
	ResourceGeneration map[string]int `json:"resource_generation,omitempty"`
	Abilities          []string       `json:"abilities,omitempty"`
	CreationCost       map[string]int `json:"creation_cost"`
}

// Faction is one agent's side: units, buildings, stock, and designs.
type Faction struct {
	ID      string `json:"faction_id"`
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Theme   Theme  `json:"theme"`

	Resources map[string]int `json:"resources"`

	Units     []*Unit     `json:"units"`
	Buildings []*Building `json:"buildings"`

	UnitDesigns     map[string]UnitDesign     `json:"unit_designs"`
	BuildingDesigns map[string]BuildingDesign `json:"building_designs"`

	UnitsCreated      int            `json:"units_created"`
	UnitsLost         int            `json:"units_lost"`
	BuildingsBuilt    int            `json:"buildings_built"`
	BuildingsLost     int            `json:"buildings_lost"`
	ResourcesGathered map[string]int `json:"resources_gathered"`
	EnemyUnitsKilled  int            `json:"enemy_units_killed"`
}

func NewFaction(agentID, name string, theme Theme) *Faction {
	return &Faction{
		ID:                uuid.NewString(),
		AgentID:           agentID,
		Name:              name,
		Theme:             theme,
		Resources:         StartingResources(),
		UnitDesigns:       make(map[string]UnitDesign),
		BuildingDesigns:   make(map[string]BuildingDesign),
		ResourcesGathered: make(map[string]int),
	}
}

func (f *Faction) CanAfford(cost map[string]int) bool {
	for kind, amount := range cost {
		if f.Resources[kind] < amount {
			return false
		}
	}
	return true
}

// SpendResources deducts the full cost or nothing.
func (f *Faction) SpendResources(cost map[string]int) bool {
	if !f.CanAfford(cost) {
		return false
	}
	for kind, amount := range cost {
		f.Resources[kind] -= amount
	}
	return true
}

// AddResources credits income and counts it toward the gathered totals.
func (f *Faction) AddResources(income map[string]int) {
	for kind, amount := range income {
		if amount <= 0 {
			continue
		}
		f.Resources[kind] += amount
		f.ResourcesGathered[kind] += amount
	}
}

// Refund returns resources without touching the gathered counters.
func (f *Faction) Refund(cost map[string]int) {
	for kind, amount := range cost {
		if amount > 0 {
			f.Resources[kind] += amount
		}
	}
}

func (f *Faction) AddUnit(u *Unit) bool {
	if len(f.Units) >= MaxUnitsPerFaction {
		return false
	}
	u.OwnerID = f.AgentID
	f.Units = append(f.Units, u)
	f.UnitsCreated++
	return true
}

func (f *Faction) RemoveUnit(id string) bool {
	for i, u := range f.Units {
		if u.ID == id {
			f.Units = append(f.Units[:i], f.Units[i+1:]...)
			f.UnitsLost++
			return true
		}
	}
	return false
}

func (f *Faction) UnitByID(id string) *Unit {
	for _, u := range f.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *Faction) AddBuilding(b *Building) bool {
	if len(f.Buildings) >= MaxBuildingsPerFaction {
		return false
	}
	b.OwnerID = f.AgentID
	f.Buildings = append(f.Buildings, b)
	f.BuildingsBuilt++
	return true
}

func (f *Faction) RemoveBuilding(id string) bool {
	for i, b := range f.Buildings {
		if b.ID == id {
			f.Buildings = append(f.Buildings[:i], f.Buildings[i+1:]...)
			f.BuildingsLost++
			return true
		}
	}
	return false
}

func (f *Faction) BuildingByID(id string) *Building {
	for _, b := range f.Buildings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (f *Faction) AddUnitDesign(d UnitDesign) {
	f.UnitDesigns[d.Name] = d
}

func (f *Faction) AddBuildingDesign(d BuildingDesign) {
	f.BuildingDesigns[d.Name] = d
}

// Defeated means nothing on the board: no living units and no standing
// buildings.
func (f *Faction) Defeated() bool {
	for _, u := range f.Units {
		if u.Alive() {
			return false
		}
	}
	for _, b := range f.Buildings {
		if !b.Destroyed() {
			return false
		}
	}
	return true
}

// MilitaryStrength sums attack+defense over living units; it breaks
// turn-limit ties.
func (f *Faction) MilitaryStrength() int {
	total := 0
	for _, u := range f.Units {
		if u.Alive() {
			total += u.Stats.Attack + u.Stats.Defense
		}
	}
	return total
}

// ResetTurnFlags clears every unit's per-round flags.
func (f *Faction) ResetTurnFlags() {
	for _, u := range f.Units {
		u.ResetTurn()
	}
}
