package turn

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gridwar/internal/app/action"
	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

// Agent pairs an id with its decision maker for the duration of a match.
type Agent struct {
	ID     string
	Decide ports.DecisionMaker
}

// Record is the full account of one agent's turn.
type Record struct {
	AgentID        string
	Outcome        ports.TurnOutcome
	Actions        []game.ProposedAction
	Results        []game.ActionResult
	ProcessingTime time.Duration
	ErrorMessage   string
}

// Manager runs agent turns: it builds the agent's fog-filtered view, asks
// the decision maker within the time budget, and executes the returned
// actions sequentially against the state. A decision maker that times out
// or errors loses the turn; the match is never blocked or mutated by a
// failed turn.
type Manager struct {
	Actions    action.UseCase
	Registry   *game.Registry
	Timeout    time.Duration
	MaxActions int
	Metrics    ports.TurnMetrics
	Events     ports.EventRepository
	Log        *slog.Logger
	Now        func() time.Time
}

func (m *Manager) timeout() time.Duration {
	if m.Timeout > 0 {
		return m.Timeout
	}
	return game.DefaultDecisionTimeout
}

func (m *Manager) maxActions() int {
	if m.MaxActions > 0 {
		return m.MaxActions
	}
	return game.DefaultMaxActionsPerTurn
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) log() *slog.Logger {
	if m.Log != nil {
		return m.Log
	}
	return slog.Default()
}

type decision struct {
	actions []game.ProposedAction
	err     error
}

// ProcessAgentTurn runs one agent's turn. The decision maker gets a
// snapshot view, never the live state, so an abandoned (timed out) call
// cannot mutate anything.
func (m *Manager) ProcessAgentTurn(ctx context.Context, st *game.State, agent Agent) Record {
	start := m.now()
	rec := Record{AgentID: agent.ID}
	log := m.log().With("agent_id", agent.ID, "turn", st.TurnNumber)

	view := st.BuildAgentView(agent.ID)

	callCtx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()

	ch := make(chan decision, 1)
	go func() {
		actions, err := agent.Decide.ProposeActions(callCtx, view)
		ch <- decision{actions: actions, err: err}
	}()

	var d decision
	select {
	case d = <-ch:
	case <-callCtx.Done():
		d = decision{err: callCtx.Err()}
	}

	switch {
	case d.err == nil:
		rec.Actions = d.actions
	case errors.Is(d.err, context.DeadlineExceeded):
		rec.Outcome = ports.TurnTimeout
		rec.ErrorMessage = "decision timed out"
		rec.ProcessingTime = m.now().Sub(start)
		log.Warn("agent turn timed out", "budget", m.timeout())
		m.finish(ctx, st, agent.ID, &rec)
		return rec
	default:
		rec.Outcome = ports.TurnError
		rec.ErrorMessage = d.err.Error()
		rec.ProcessingTime = m.now().Sub(start)
		log.Error("agent decision failed", "error", d.err)
		m.finish(ctx, st, agent.ID, &rec)
		return rec
	}

	if max := m.maxActions(); len(rec.Actions) > max {
		log.Warn("action cap exceeded, truncating", "proposed", len(rec.Actions), "cap", max)
		rec.Actions = rec.Actions[:max]
	}

	rec.Outcome = ports.TurnSuccess
	for _, act := range rec.Actions {
		act.AgentID = agent.ID
		res := m.Actions.Execute(ctx, st, act)
		rec.Results = append(rec.Results, res)
		if m.Metrics != nil {
			m.Metrics.RecordAction(agent.ID, res.Success)
		}
		if res.Critical {
			rec.Outcome = ports.TurnError
			rec.ErrorMessage = res.Error
			log.Error("critical action failure, abandoning turn", "action", act.Type, "error", res.Error)
			break
		}
		if !res.Success {
			log.Debug("action rejected", "action", act.Type, "reason", res.Error)
		}
	}

	rec.ProcessingTime = m.now().Sub(start)
	m.finish(ctx, st, agent.ID, &rec)
	return rec
}

// finish records metrics and appends the turn's events to the repository.
func (m *Manager) finish(ctx context.Context, st *game.State, agentID string, rec *Record) {
	if m.Metrics != nil {
		m.Metrics.RecordTurn(agentID, rec.Outcome, rec.ProcessingTime, len(rec.Actions))
	}
	if m.Events == nil {
		return
	}
	events := make([]game.Event, 0, len(rec.Results)+1)
	for i, res := range rec.Results {
		events = append(events, game.Event{
			Type:       "action_executed",
			Turn:       st.TurnNumber,
			OccurredAt: m.now(),
			Data: map[string]any{
				"action_type": string(rec.Actions[i].Type),
				"success":     res.Success,
				"error":       res.Error,
				"reasoning":   rec.Actions[i].Reasoning,
			},
		})
	}
	events = append(events, game.Event{
		Type:       "turn_completed",
		Turn:       st.TurnNumber,
		OccurredAt: m.now(),
		Data: map[string]any{
			"outcome":         string(rec.Outcome),
			"actions":         len(rec.Actions),
			"processing_time": rec.ProcessingTime.Seconds(),
		},
	})
	if err := m.Events.Append(ctx, agentID, events); err != nil {
		m.log().Error("event append failed", "agent_id", agentID, "error", err)
	}
}

// RunRound gives every agent in turn order one turn, advances the rotation
// after each, and runs round-end processing when the rotation wraps.
// Eliminated agents still consume a rotation slot but are not asked for
// decisions.
func (m *Manager) RunRound(ctx context.Context, st *game.State, agents []Agent) []Record {
	deciders := make(map[string]Agent, len(agents))
	for _, a := range agents {
		deciders[a.ID] = a
	}

	var records []Record
	order := append([]string(nil), st.TurnOrder...)
	for i, agentID := range order {
		if st.Phase != game.PhasePlaying {
			break
		}
		st.CurrentPlayerIndex = i
		if agent, ok := deciders[agentID]; ok && st.FactionAlive(agentID) {
			records = append(records, m.ProcessAgentTurn(ctx, st, agent))
		}
		if wrapped := st.AdvanceTurn(); wrapped {
			st.EndOfRound(m.Registry)
		}
	}
	return records
}
