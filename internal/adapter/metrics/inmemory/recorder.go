// Package inmemory implements the turn metrics port with an in-process
// recorder exposed through the ops KPI endpoint.
package inmemory

import (
	"sync"
	"time"

	"gridwar/internal/app/ports"
)

type agentStats struct {
	turns           uint64
	successes       uint64
	timeouts        uint64
	errors          uint64
	actions         uint64
	actionSuccesses uint64
	processing      time.Duration
}

type Recorder struct {
	mu     sync.Mutex
	agents map[string]*agentStats
}

func NewRecorder() *Recorder {
	return &Recorder{agents: make(map[string]*agentStats)}
}

func (r *Recorder) RecordTurn(agentID string, outcome ports.TurnOutcome, processing time.Duration, actions int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.agent(agentID)
	s.turns++
	s.processing += processing
	switch outcome {
	case ports.TurnSuccess:
		s.successes++
	case ports.TurnTimeout:
		s.timeouts++
	case ports.TurnError:
		s.errors++
	}
	if actions > 0 {
		s.actions += uint64(actions)
	}
}

func (r *Recorder) RecordAction(agentID string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if success {
		r.agent(agentID).actionSuccesses++
	}
}

func (r *Recorder) agent(agentID string) *agentStats {
	s, ok := r.agents[agentID]
	if !ok {
		s = &agentStats{}
		r.agents[agentID] = s
	}
	return s
}

type AgentSnapshot struct {
	TurnsProcessed           uint64  `json:"turns_processed"`
	SuccessfulTurns          uint64  `json:"successful_turns"`
	Timeouts                 uint64  `json:"timeouts"`
	Errors                   uint64  `json:"errors"`
	SuccessRate              float64 `json:"success_rate"`
	TotalActions             uint64  `json:"total_actions"`
	SuccessfulActions        uint64  `json:"successful_actions"`
	AverageActionsPerTurn    float64 `json:"average_actions_per_turn"`
	AverageProcessingSeconds float64 `json:"average_processing_seconds"`
}

type Snapshot struct {
	TurnsProcessed           uint64                   `json:"turns_processed"`
	TimeoutCount             uint64                   `json:"timeout_count"`
	ErrorCount               uint64                   `json:"error_count"`
	TimeoutRate              float64                  `json:"timeout_rate"`
	ErrorRate                float64                  `json:"error_rate"`
	AverageProcessingSeconds float64                  `json:"average_processing_seconds"`
	Agents                   map[string]AgentSnapshot `json:"agents"`
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := Snapshot{Agents: make(map[string]AgentSnapshot, len(r.agents))}
	var totalProcessing time.Duration
	for agentID, s := range r.agents {
		agent := AgentSnapshot{
			TurnsProcessed:    s.turns,
			SuccessfulTurns:   s.successes,
			Timeouts:          s.timeouts,
			Errors:            s.errors,
			TotalActions:      s.actions,
			SuccessfulActions: s.actionSuccesses,
		}
		if s.turns > 0 {
			agent.SuccessRate = float64(s.successes) / float64(s.turns)
			agent.AverageActionsPerTurn = float64(s.actions) / float64(s.turns)
			agent.AverageProcessingSeconds = s.processing.Seconds() / float64(s.turns)
		}
		snap.Agents[agentID] = agent
		snap.TurnsProcessed += s.turns
		snap.TimeoutCount += s.timeouts
		snap.ErrorCount += s.errors
		totalProcessing += s.processing
	}
	if snap.TurnsProcessed > 0 {
		snap.TimeoutRate = float64(snap.TimeoutCount) / float64(snap.TurnsProcessed)
		snap.ErrorRate = float64(snap.ErrorCount) / float64(snap.TurnsProcessed)
		snap.AverageProcessingSeconds = totalProcessing.Seconds() / float64(snap.TurnsProcessed)
	}
	return snap
}

// SnapshotAny feeds the KPI endpoint without binding the HTTP layer to
// this package's types.
func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
