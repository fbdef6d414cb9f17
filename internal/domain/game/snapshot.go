package game

// Snapshot is the full serialized match state: everything, no fog. It is a
// deep copy safe to hand to archival, spectators, and the balance reviewer.
type Snapshot struct {
	GameID             string `json:"game_id"`
	TurnNumber         int    `json:"turn_number"`
	Phase              string `json:"phase"`
	CurrentPlayerIndex int    `json:"current_player_index"`
	WinnerID           string `json:"winner_id,omitempty"`

	MapWidth  int          `json:"map_width"`
	MapHeight int          `json:"map_height"`
	Map       [][]TileView `json:"map"`

	Factions  map[string]FactionView `json:"factions"`
	TurnOrder []string               `json:"turn_order"`

	Balance           Balance  `json:"balance_settings"`
	VictoryConditions []string `json:"victory_conditions"`

	EventLog []Event `json:"event_log"`
}

// BuildSnapshot serializes the whole state. The event log is already
// bounded to the most recent entries by LogEvent.
func (s *State) BuildSnapshot() Snapshot {
	snap := Snapshot{
		GameID:             s.GameID,
		TurnNumber:         s.TurnNumber,
		Phase:              string(s.Phase),
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		WinnerID:           s.WinnerID,
		MapWidth:           s.Width,
		MapHeight:          s.Height,
		Factions:           make(map[string]FactionView, len(s.Factions)),
		TurnOrder:          append([]string(nil), s.TurnOrder...),
		Balance:            s.Balance,
		EventLog:           append([]Event(nil), s.EventLog...),
	}
	for _, vc := range s.VictoryConditions {
		snap.VictoryConditions = append(snap.VictoryConditions, string(vc))
	}
	snap.Map = make([][]TileView, s.Height)
	for y := 0; y < s.Height; y++ {
		snap.Map[y] = make([]TileView, s.Width)
		for x := 0; x < s.Width; x++ {
			t := s.Grid[y][x]
			snap.Map[y][x] = TileView{
				X:              t.X,
				Y:              t.Y,
				Terrain:        string(t.Terrain),
				Explored:       true,
				Visible:        true,
				UnitID:         t.UnitID,
				BuildingID:     t.BuildingID,
				ResourceType:   t.ResourceType,
				ResourceAmount: t.ResourceAmount,
			}
		}
	}
	for agentID, f := range s.Factions {
		snap.Factions[agentID] = buildFactionView(f)
	}
	return snap
}
