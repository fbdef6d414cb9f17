package game

// AgentView is the fog-filtered, deep-copied slice of state one agent is
// allowed to see. It shares no pointers with the live state, so readers on
// other goroutines and decision makers can hold it freely.
type AgentView struct {
	GameID       string `json:"game_id"`
	TurnNumber   int    `json:"turn_number"`
	Phase        string `json:"phase"`
	CurrentAgent string `json:"current_agent"`
	IsMyTurn     bool   `json:"is_my_turn"`

	AgentID string       `json:"agent_id"`
	Faction *FactionView `json:"my_faction,omitempty"`

	MapWidth  int          `json:"map_width"`
	MapHeight int          `json:"map_height"`
	Map       [][]TileView `json:"visible_map"`

	VisibleEnemies map[string][]EnemyUnitView `json:"visible_enemies,omitempty"`

	VictoryConditions []string `json:"victory_conditions"`
	Balance           Balance  `json:"balance_settings"`
}

type TileView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Terrain string `json:"terrain"`

	Explored bool `json:"explored"`
	Visible  bool `json:"visible"`

	UnitID     string `json:"unit_id,omitempty"`
	BuildingID string `json:"building_id,omitempty"`

	ResourceType   string `json:"resource_type,omitempty"`
	ResourceAmount int    `json:"resource_amount,omitempty"`
}

type FactionView struct {
	ID        string         `json:"faction_id"`
	Name      string         `json:"name"`
	Theme     Theme          `json:"theme"`
	Resources map[string]int `json:"resources"`

	Units     []Unit     `json:"units"`
	Buildings []Building `json:"buildings"`

	UnitDesigns     map[string]UnitDesign     `json:"unit_designs"`
	BuildingDesigns map[string]BuildingDesign `json:"building_designs"`

	UnitsCreated   int `json:"units_created"`
	UnitsLost      int `json:"units_lost"`
	BuildingsBuilt int `json:"buildings_built"`
	BuildingsLost  int `json:"buildings_lost"`
}

// EnemyUnitView is the reduced profile exposed for enemies on visible
// tiles: identity, position, health, and ability ids only.
type EnemyUnitView struct {
	UnitID    string   `json:"unit_id"`
	Name      string   `json:"name"`
	Class     string   `json:"class"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"max_health"`
	Abilities []string `json:"abilities,omitempty"`
}

const terrainUnknown = "unknown"

// BuildAgentView renders the state from one agent's perspective. Unexplored
// tiles are placeholders with unknown terrain; explored-but-fogged tiles
// show terrain and remembered resource kind without occupants; visible
// tiles show everything on them.
func (s *State) BuildAgentView(agentID string) AgentView {
	view := AgentView{
		GameID:       s.GameID,
		TurnNumber:   s.TurnNumber,
		Phase:        string(s.Phase),
		CurrentAgent: s.CurrentAgent(),
		IsMyTurn:     s.CurrentAgent() == agentID,
		AgentID:      agentID,
		MapWidth:     s.Width,
		MapHeight:    s.Height,
		Balance:      s.Balance,
	}
	for _, vc := range s.VictoryConditions {
		view.VictoryConditions = append(view.VictoryConditions, string(vc))
	}

	view.Map = make([][]TileView, s.Height)
	for y := 0; y < s.Height; y++ {
		view.Map[y] = make([]TileView, s.Width)
		for x := 0; x < s.Width; x++ {
			view.Map[y][x] = s.buildTileView(s.Grid[y][x], agentID)
		}
	}

	if f, ok := s.Factions[agentID]; ok {
		fv := buildFactionView(f)
		view.Faction = &fv
		view.VisibleEnemies = s.buildEnemyViews(agentID)
	}
	return view
}

func (s *State) buildTileView(t *Tile, agentID string) TileView {
	tv := TileView{X: t.X, Y: t.Y, Terrain: terrainUnknown}
	if !t.ExploredFor(agentID) {
		return tv
	}
	tv.Explored = true
	tv.Terrain = string(t.Terrain)
	tv.ResourceType = t.ResourceType
	tv.ResourceAmount = t.ResourceAmount
	if !t.VisibleFor(agentID) {
		return tv
	}
	tv.Visible = true
	tv.UnitID = t.UnitID
	tv.BuildingID = t.BuildingID
	return tv
}

func buildFactionView(f *Faction) FactionView {
	fv := FactionView{
		ID:              f.ID,
		Name:            f.Name,
		Theme:           f.Theme,
		Resources:       copyCost(f.Resources),
		UnitDesigns:     make(map[string]UnitDesign, len(f.UnitDesigns)),
		BuildingDesigns: make(map[string]BuildingDesign, len(f.BuildingDesigns)),
		UnitsCreated:    f.UnitsCreated,
		UnitsLost:       f.UnitsLost,
		BuildingsBuilt:  f.BuildingsBuilt,
		BuildingsLost:   f.BuildingsLost,
	}
	for _, u := range f.Units {
		fv.Units = append(fv.Units, copyUnit(u))
	}
	for _, b := range f.Buildings {
		fv.Buildings = append(fv.Buildings, copyBuilding(b))
	}
	for name, d := range f.UnitDesigns {
		fv.UnitDesigns[name] = copyUnitDesign(d)
	}
	for name, d := range f.BuildingDesigns {
		fv.BuildingDesigns[name] = copyBuildingDesign(d)
	}
	return fv
}

func (s *State) buildEnemyViews(agentID string) map[string][]EnemyUnitView {
	out := make(map[string][]EnemyUnitView)
	for _, otherID := range s.TurnOrder {
		if otherID == agentID {
			continue
		}
		for _, u := range s.Factions[otherID].Units {
			if !u.Alive() {
				continue
			}
			t := s.TileAt(u.X, u.Y)
			if t == nil || !t.VisibleFor(agentID) {
				continue
			}
			out[otherID] = append(out[otherID], EnemyUnitView{
				UnitID:    u.ID,
				Name:      u.Name,
				Class:     string(u.Class),
				X:         u.X,
				Y:         u.Y,
				Health:    u.Stats.Health,
				MaxHealth: u.Stats.MaxHealth,
				Abilities: append([]string(nil), u.Abilities...),
			})
		}
	}
	return out
}

func copyUnit(u *Unit) Unit {
	cp := *u
	cp.Abilities = append([]string(nil), u.Abilities...)
	cp.StatusEffects = make(map[string]int, len(u.StatusEffects))
	for k, v := range u.StatusEffects {
		cp.StatusEffects[k] = v
	}
	cp.CreationCost = copyCost(u.CreationCost)
	return cp
}

func copyBuilding(b *Building) Building {
	cp := *b
	cp.ProducesClasses = append([]string(nil), b.ProducesClasses...)
	cp.ResourceGeneration = copyCost(b.ResourceGeneration)
	cp.Abilities = append([]string(nil), b.Abilities...)
	cp.CreationCost = copyCost(b.CreationCost)
	return cp
}

func copyUnitDesign(d UnitDesign) UnitDesign {
	d.Abilities = append([]string(nil), d.Abilities...)
	d.CreationCost = copyCost(d.CreationCost)
	return d
}

func copyBuildingDesign(d BuildingDesign) BuildingDesign {
	d.ProducesClasses = append([]string(nil), d.ProducesClasses...)
	d.ResourceGeneration = copyCost(d.ResourceGeneration)
	d.Abilities = append([]string(nil), d.Abilities...)
	d.CreationCost = copyCost(d.CreationCost)
	return d
}
