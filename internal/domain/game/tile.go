package game

// Tile is one grid cell. Occupancy is single-slot for units and buildings
// independently; visibility flags are per-agent.
type Tile struct {
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Terrain TerrainType `json:"terrain"`

	UnitID     string `json:"unit_id,omitempty"`
	BuildingID string `json:"building_id,omitempty"`

	ResourceType   string `json:"resource_type,omitempty"`
	ResourceAmount int    `json:"resource_amount,omitempty"`

	VisibleTo  map[string]bool `json:"-"`
	ExploredBy map[string]bool `json:"-"`
}

func NewTile(x, y int, terrain TerrainType) *Tile {
	return &Tile{
		X:          x,
		Y:          y,
		Terrain:    terrain,
		VisibleTo:  make(map[string]bool),
		ExploredBy: make(map[string]bool),
	}
}

func (t *Tile) Passable() bool {
	return t.Terrain != TerrainWater
}

// CanPlaceUnit reports whether a land unit may stand here. Occupancy is
// mutually exclusive: a tile holds at most one of a unit or a building.
func (t *Tile) CanPlaceUnit() bool {
	return t.Passable() && t.UnitID == "" && t.BuildingID == ""
}

// CanPlaceBuilding reports whether a structure may be raised here.
// Buildings need flat ground and an empty cell.
func (t *Tile) CanPlaceBuilding() bool {
	if t.Terrain != TerrainPlains && t.Terrain != TerrainDesert {
		return false
	}
	return t.UnitID == "" && t.BuildingID == ""
}

func (t *Tile) PlaceUnit(id string) bool {
	if !t.CanPlaceUnit() {
		return false
	}
	t.UnitID = id
	return true
}

func (t *Tile) RemoveUnit() {
	t.UnitID = ""
}

func (t *Tile) PlaceBuilding(id string) bool {
	if !t.CanPlaceBuilding() {
		return false
	}
	t.BuildingID = id
	return true
}

func (t *Tile) RemoveBuilding() {
	t.BuildingID = ""
}

// Harvest removes up to amount from the node and returns what was taken.
// The node's kind survives at zero so views can still show a depleted site.
func (t *Tile) Harvest(amount int) int {
	if t.ResourceType == "" || t.ResourceAmount <= 0 || amount <= 0 {
		return 0
	}
	if amount > t.ResourceAmount {
		amount = t.ResourceAmount
	}
	t.ResourceAmount -= amount
	return amount
}

func (t *Tile) VisibleFor(agentID string) bool {
	return t.VisibleTo[agentID]
}

func (t *Tile) ExploredFor(agentID string) bool {
	return t.ExploredBy[agentID]
}
