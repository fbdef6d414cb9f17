package game

// RecomputeVisibility rebuilds fog of war from scratch: every tile's
// visible set is cleared, then each living unit reveals a Manhattan disc
// around itself. Only units observe; buildings hold ground but see
// nothing. Revealed tiles become explored and stay explored forever.
//
// Stealth reduces how far an observer can resolve a stealthed occupant:
// a tile holding an enemy unit with the stealth ability is only revealed
// within half the observer's sight radius.
func (s *State) RecomputeVisibility() {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Grid[y][x].VisibleTo = make(map[string]bool)
		}
	}
	for _, agentID := range s.TurnOrder {
		f := s.Factions[agentID]
		for _, u := range f.Units {
			if u.Alive() {
				s.revealAround(agentID, u.X, u.Y, u.Stats.SightRange)
			}
		}
	}
}

func (s *State) revealAround(agentID string, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx)+abs(dy) > radius {
				continue
			}
			t := s.TileAt(cx+dx, cy+dy)
			if t == nil {
				continue
			}
			if s.tileHidesFrom(t, agentID) && abs(dx)+abs(dy) > radius/2 {
				continue
			}
			t.VisibleTo[agentID] = true
			t.ExploredBy[agentID] = true
		}
	}
}

// tileHidesFrom reports whether the tile holds a stealthed enemy unit,
// which halves the observer's effective sight against it.
func (s *State) tileHidesFrom(t *Tile, agentID string) bool {
	if t.UnitID == "" {
		return false
	}
	u, owner := s.FindUnit(t.UnitID)
	if u == nil || owner.AgentID == agentID {
		return false
	}
	return u.HasAbility("stealth")
}
