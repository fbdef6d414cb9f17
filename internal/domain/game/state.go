package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMatchFull       = errors.New("match is full")
	ErrFactionExists   = errors.New("agent already has a faction")
	ErrPhaseRegression = errors.New("phase transitions cannot go backward")
)

// StateConfig seeds a new match. Zero values fall back to the defaults.
type StateConfig struct {
	GameID            string
	Width             int
	Height            int
	MaxPlayers        int
	Seed              int64
	VictoryConditions []VictoryCondition
	Balance           Balance
}

// State is the authoritative match state. It is not safe for concurrent
// use: one goroutine owns it for the whole match, and everything that
// leaves it (views, snapshots) is a deep copy.
type State struct {
	GameID             string
	Width              int
	Height             int
	MaxPlayers         int
	TurnNumber         int
	Phase              GamePhase
	CurrentPlayerIndex int

	Grid     [][]*Tile
	Factions map[string]*Faction
	// TurnOrder is agent ids in registration order; it never changes once
	// the match starts.
	TurnOrder []string

	Balance           Balance
	VictoryConditions []VictoryCondition
	WinnerID          string

	EventLog []Event

	rng *rand.Rand
	now func() time.Time
}

func NewState(cfg StateConfig) *State {
	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultMapWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultMapHeight
	}
	if cfg.MaxPlayers <= 0 || cfg.MaxPlayers > MaxPlayers {
		cfg.MaxPlayers = MaxPlayers
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if len(cfg.VictoryConditions) == 0 {
		cfg.VictoryConditions = []VictoryCondition{VictoryElimination, VictoryTimeLimit}
	}
	if cfg.Balance == (Balance{}) {
		cfg.Balance = DefaultBalance()
	}

	st := &State{
		GameID:            cfg.GameID,
		Width:             cfg.Width,
		Height:            cfg.Height,
		MaxPlayers:        cfg.MaxPlayers,
		TurnNumber:        1,
		Phase:             PhaseSetup,
		Factions:          make(map[string]*Faction),
		Balance:           cfg.Balance,
		VictoryConditions: cfg.VictoryConditions,
		rng:               rand.New(rand.NewSource(cfg.Seed)),
		now:               time.Now,
	}
	st.generateTerrain()
	return st
}

// SetClock overrides the event timestamp source; tests use it.
func (s *State) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

func (s *State) TileAt(x, y int) *Tile {
	if !s.InBounds(x, y) {
		return nil
	}
	return s.Grid[y][x]
}

// generateTerrain lays plains, a water fringe, mountains away from center,
// scattered forest and desert, then seeds resource nodes on ~10% of
// passable tiles.
func (s *State) generateTerrain() {
	s.Grid = make([][]*Tile, s.Height)
	cx, cy := s.Width/2, s.Height/2
	for y := 0; y < s.Height; y++ {
		s.Grid[y] = make([]*Tile, s.Width)
		for x := 0; x < s.Width; x++ {
			terrain := TerrainPlains
			edge := x == 0 || y == 0 || x == s.Width-1 || y == s.Height-1
			switch {
			case edge && s.rng.Float64() < 0.35:
				terrain = TerrainWater
			case ManhattanDistance(x, y, cx, cy) > (s.Width+s.Height)/3 && s.rng.Float64() < 0.25:
				terrain = TerrainMountain
			case s.rng.Float64() < 0.15:
				terrain = TerrainForest
			case s.rng.Float64() < 0.08:
				terrain = TerrainDesert
			}
			s.Grid[y][x] = NewTile(x, y, terrain)
		}
	}
	kinds := ResourceKinds()
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			t := s.Grid[y][x]
			if !t.Passable() || s.rng.Float64() >= ResourceNodeChance {
				continue
			}
			t.ResourceType = kinds[s.rng.Intn(len(kinds))]
			t.ResourceAmount = ResourceNodeMin + s.rng.Intn(ResourceNodeMax-ResourceNodeMin+1)
		}
	}
}

// AddFaction registers an agent's faction and places its starting pieces.
func (s *State) AddFaction(agentID string, f *Faction) error {
	if len(s.Factions) >= s.MaxPlayers {
		return ErrMatchFull
	}
	if _, ok := s.Factions[agentID]; ok {
		return ErrFactionExists
	}
	f.AgentID = agentID
	s.Factions[agentID] = f
	s.TurnOrder = append(s.TurnOrder, agentID)
	s.placeStartingPieces(f)
	s.LogEvent("faction_created", map[string]any{
		"agent_id": agentID,
		"name":     f.Name,
	})
	return nil
}

// placeStartingPieces drops a town center plus two starter units on a clear
// plains patch. Placement is best-effort: an unplaceable board leaves the
// faction empty, which victory evaluation treats as defeat.
func (s *State) placeStartingPieces(f *Faction) {
	sx, sy, ok := s.findStartingArea()
	if !ok {
		return
	}

	tcDesign := BuildingDesign{Name: "Town Center", Type: BuildingTownCenter}
	tcDesign = ApplyBuildingTemplate(tcDesign)
	tc := NewBuilding(tcDesign.Name, BuildingTownCenter, f.AgentID, sx, sy, tcDesign)
	if f.AddBuilding(tc) {
		s.Grid[sy][sx].PlaceBuilding(tc.ID)
	}

	explorerStats, _ := NewStats(30, 5, 3, 3, 1, 5)
	settlerStats, _ := NewStats(25, 3, 2, 2, 1, 3)
	starters := []struct {
		name  string
		class UnitClass
		dx    int
		dy    int
		stats Stats
		abil  []string
	}{
		{"Explorer", ClassScout, 1, 1, explorerStats, []string{"gather"}},
		{"Settler", ClassWorker, -1, 1, settlerStats, []string{"build", "gather"}},
	}
	for _, sp := range starters {
		x, y := sx+sp.dx, sy+sp.dy
		tile := s.TileAt(x, y)
		if tile == nil || !tile.CanPlaceUnit() {
			continue
		}
		u := NewUnit(sp.name, sp.class, f.AgentID, x, y, sp.stats, sp.abil)
		if f.AddUnit(u) {
			tile.PlaceUnit(u.ID)
		}
	}
}

// findStartingArea looks for a plains tile whose 3x3 neighborhood is clear
// and passable, random probes first, then a deterministic scan.
func (s *State) findStartingArea() (int, int, bool) {
	suitable := func(cx, cy int) bool {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				t := s.TileAt(cx+dx, cy+dy)
				if t == nil || !t.Passable() || t.UnitID != "" || t.BuildingID != "" {
					return false
				}
			}
		}
		return s.Grid[cy][cx].Terrain == TerrainPlains
	}
	for i := 0; i < 100; i++ {
		x := 1 + s.rng.Intn(s.Width-2)
		y := 1 + s.rng.Intn(s.Height-2)
		if suitable(x, y) {
			return x, y, true
		}
	}
	for y := 1; y < s.Height-1; y++ {
		for x := 1; x < s.Width-1; x++ {
			if suitable(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (s *State) FactionFor(agentID string) *Faction {
	return s.Factions[agentID]
}

// FindUnit searches every faction for a unit id.
func (s *State) FindUnit(id string) (*Unit, *Faction) {
	for _, agentID := range s.TurnOrder {
		f := s.Factions[agentID]
		if u := f.UnitByID(id); u != nil {
			return u, f
		}
	}
	return nil, nil
}

func (s *State) FindBuilding(id string) (*Building, *Faction) {
	for _, agentID := range s.TurnOrder {
		f := s.Factions[agentID]
		if b := f.BuildingByID(id); b != nil {
			return b, f
		}
	}
	return nil, nil
}

// FactionAlive reports whether an agent still has pieces on the board.
func (s *State) FactionAlive(agentID string) bool {
	f, ok := s.Factions[agentID]
	return ok && !f.Defeated()
}

// CurrentAgent is the agent whose turn it is, or "" before factions exist.
func (s *State) CurrentAgent() string {
	if len(s.TurnOrder) == 0 {
		return ""
	}
	return s.TurnOrder[s.CurrentPlayerIndex%len(s.TurnOrder)]
}

// TransitionTo moves the phase forward. Backward transitions are rejected;
// transitioning to the current phase is a no-op.
func (s *State) TransitionTo(phase GamePhase) error {
	from, to := phaseRank(s.Phase), phaseRank(phase)
	if to < 0 {
		return fmt.Errorf("unknown phase %q", phase)
	}
	if to < from {
		return fmt.Errorf("%w: %s -> %s", ErrPhaseRegression, s.Phase, phase)
	}
	if to == from {
		return nil
	}
	prev := s.Phase
	s.Phase = phase
	s.LogEvent("phase_changed", map[string]any{"from": string(prev), "to": string(phase)})
	return nil
}

// AdvanceTurn rotates to the next agent in the fixed order. It reports
// whether the rotation wrapped, which increments the turn counter; the
// caller runs round-end processing on a wrap.
func (s *State) AdvanceTurn() bool {
	if len(s.TurnOrder) == 0 {
		return false
	}
	s.CurrentPlayerIndex++
	if s.CurrentPlayerIndex < len(s.TurnOrder) {
		return false
	}
	s.CurrentPlayerIndex = 0
	s.TurnNumber++
	return true
}

// LogEvent appends a match event, keeping the in-state log bounded.
func (s *State) LogEvent(eventType string, data map[string]any) {
	s.EventLog = append(s.EventLog, Event{
		Type:       eventType,
		Turn:       s.TurnNumber,
		OccurredAt: s.now(),
		Data:       data,
	})
	if len(s.EventLog) > EventLogLimit {
		s.EventLog = s.EventLog[len(s.EventLog)-EventLogLimit:]
	}
}

// EndOfRound runs the round boundary: building output and round abilities,
// gathering, flag resets, corpse cleanup, and the fog recompute.
func (s *State) EndOfRound(reg *Registry) {
	for _, agentID := range s.TurnOrder {
		s.processBuildings(reg, s.Factions[agentID])
	}
	for _, agentID := range s.TurnOrder {
		s.processGathering(reg, s.Factions[agentID])
	}
	for _, agentID := range s.TurnOrder {
		s.Factions[agentID].ResetTurnFlags()
	}
	s.removeDead()
	s.RecomputeVisibility()
}

// processBuildings runs one ability pass per standing building and credits
// its (possibly ability-boosted) resource output.
func (s *State) processBuildings(reg *Registry, f *Faction) {
	for _, b := range f.Buildings {
		if b.Destroyed() || !b.ConstructionComplete {
			continue
		}
		income := ScaleCost(b.ResourceGeneration, s.Balance.ResourceGenerationMultiplier)
		ctx := &AbilityContext{
			Building:   b,
			State:      s,
			Phase:      ContextEndTurn,
			TurnNumber: s.TurnNumber,
			Resources:  income,
		}
		report := reg.Execute(b.Abilities, ctx)
		f.AddResources(ctx.Resources)
		s.applyBuildingEffects(b, f, report)
	}
}

func (s *State) applyBuildingEffects(b *Building, f *Faction, report AbilityReport) {
	if effect, ok := report.Effects["auto_attack"]; ok {
		damage, _ := effect["damage"].(int)
		rng, _ := effect["range"].(int)
		if target := s.nearestEnemyUnit(f.AgentID, b.X, b.Y, rng); target != nil && damage > 0 {
			target.TakeDamage(damage)
			s.LogEvent("tower_attack", map[string]any{
				"building_id": b.ID,
				"target_id":   target.ID,
				"damage":      damage,
			})
		}
	}
	if effect, ok := report.Effects["heal_aura"]; ok {
		amount, _ := effect["heal"].(int)
		radius, _ := effect["radius"].(int)
		for _, u := range f.Units {
			if u.Alive() && ManhattanDistance(u.X, u.Y, b.X, b.Y) <= radius {
				u.Heal(amount)
			}
		}
	}
}

// nearestEnemyUnit picks the closest living enemy unit within range,
// breaking ties by y then x so the choice is deterministic.
func (s *State) nearestEnemyUnit(agentID string, x, y, maxRange int) *Unit {
	var best *Unit
	bestDist := maxRange + 1
	for _, otherID := range s.TurnOrder {
		if otherID == agentID {
			continue
		}
		for _, u := range s.Factions[otherID].Units {
			if !u.Alive() {
				continue
			}
			d := ManhattanDistance(u.X, u.Y, x, y)
			if d > maxRange {
				continue
			}
			if best == nil || d < bestDist ||
				(d == bestDist && (u.Y < best.Y || (u.Y == best.Y && u.X < best.X))) {
				best = u
				bestDist = d
			}
		}
	}
	return best
}

// processGathering harvests resource nodes under living units. The node
// depletes by the base harvest; the gather ability boosts what the faction
// banks without draining the node faster.
func (s *State) processGathering(reg *Registry, f *Faction) {
	for _, u := range f.Units {
		if !u.Alive() {
			continue
		}
		tile := s.TileAt(u.X, u.Y)
		if tile == nil || tile.ResourceType == "" || tile.ResourceAmount <= 0 {
			continue
		}
		taken := tile.Harvest(GatherHarvestBase)
		if taken <= 0 {
			continue
		}
		ctx := &AbilityContext{
			Unit:       u,
			State:      s,
			Phase:      ContextEndTurn,
			TurnNumber: s.TurnNumber,
			Resources:  map[string]int{tile.ResourceType: taken},
		}
		reg.Execute(u.Abilities, ctx)
		f.AddResources(ctx.Resources)
	}
}

// removeDead clears dead units and razed buildings from factions and
// tiles. Kill credit is assigned at the action layer; this sweep only
// covers round-end deaths.
func (s *State) removeDead() {
	for _, agentID := range s.TurnOrder {
		f := s.Factions[agentID]
		for _, u := range append([]*Unit(nil), f.Units...) {
			if u.Alive() {
				continue
			}
			if t := s.TileAt(u.X, u.Y); t != nil && t.UnitID == u.ID {
				t.RemoveUnit()
			}
			f.RemoveUnit(u.ID)
			s.LogEvent("unit_destroyed", map[string]any{"unit_id": u.ID, "owner": agentID})
		}
		for _, b := range append([]*Building(nil), f.Buildings...) {
			if !b.Destroyed() {
				continue
			}
			if t := s.TileAt(b.X, b.Y); t != nil && t.BuildingID == b.ID {
				t.RemoveBuilding()
			}
			f.RemoveBuilding(b.ID)
			s.LogEvent("building_destroyed", map[string]any{"building_id": b.ID, "owner": agentID})
		}
	}
}

// FreeTileAdjacent returns the first placeable neighbor of (x,y) in a fixed
// scan order, so spawn placement is reproducible.
func (s *State) FreeTileAdjacent(x, y int) (*Tile, bool) {
	offsets := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	for _, off := range offsets {
		t := s.TileAt(x+off[0], y+off[1])
		if t != nil && t.CanPlaceUnit() {
			return t, true
		}
	}
	return nil, false
}
