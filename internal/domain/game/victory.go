package game

// EvaluateVictory checks the configured victory conditions at a round
// boundary. When the match ends it records the winner, transitions to the
// ended phase, and returns (winner, true). A mutual wipeout ends the match
// with no winner.
func (s *State) EvaluateVictory(maxTurns int) (string, bool) {
	if s.Phase == PhaseEnded {
		return s.WinnerID, true
	}

	var active []string
	for _, agentID := range s.TurnOrder {
		if s.FactionAlive(agentID) {
			active = append(active, agentID)
		}
	}

	if s.hasCondition(VictoryElimination) && len(s.TurnOrder) > 1 {
		switch len(active) {
		case 1:
			return s.declareWinner(active[0], "elimination"), true
		case 0:
			return s.declareWinner("", "mutual_elimination"), true
		}
	}

	if s.hasCondition(VictoryTimeLimit) && maxTurns > 0 && s.TurnNumber > maxTurns {
		winner := ""
		best := -1
		for _, agentID := range active {
			strength := s.Factions[agentID].MilitaryStrength()
			if strength > best {
				best = strength
				winner = agentID
			}
		}
		return s.declareWinner(winner, "turn_limit"), true
	}

	return "", false
}

func (s *State) hasCondition(c VictoryCondition) bool {
	for _, vc := range s.VictoryConditions {
		if vc == c {
			return true
		}
	}
	return false
}

func (s *State) declareWinner(agentID, reason string) string {
	s.WinnerID = agentID
	s.LogEvent("match_ended", map[string]any{"winner": agentID, "reason": reason})
	_ = s.TransitionTo(PhaseEnded)
	return agentID
}
