package turn_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gridwar/internal/app/action"
	"gridwar/internal/app/ports"
	"gridwar/internal/app/turn"
	"gridwar/internal/domain/game"
)

func newPlayingState(t *testing.T) *game.State {
	t.Helper()
	st := game.NewState(game.StateConfig{Width: 10, Height: 10, Seed: 5})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			st.Grid[y][x] = game.NewTile(x, y, game.TerrainPlains)
		}
	}
	st.Phase = game.PhasePlaying
	return st
}

func enroll(t *testing.T, st *game.State, agentID string, x, y int) *game.Unit {
	t.Helper()
	f := game.NewFaction(agentID, "House "+agentID, game.Theme{})
	st.Factions[agentID] = f
	st.TurnOrder = append(st.TurnOrder, agentID)
	stats, err := game.NewStats(50, 10, 5, 2, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	u := game.NewUnit("Pawn", game.ClassInfantry, agentID, x, y, stats, nil)
	f.AddUnit(u)
	st.Grid[y][x].PlaceUnit(u.ID)
	return u
}

func newManager() (*turn.Manager, *recordingMetrics, *recordingEvents) {
	metrics := &recordingMetrics{}
	events := &recordingEvents{}
	return &turn.Manager{
		Actions:  action.NewUseCase(game.NewRegistry()),
		Registry: game.NewRegistry(),
		Metrics:  metrics,
		Events:   events,
	}, metrics, events
}

func TestProcessAgentTurn_ExecutesActions(t *testing.T) {
	st := newPlayingState(t)
	u := enroll(t, st, "a1", 2, 2)
	mgr, metrics, events := newManager()

	dec := fakeDecider{actions: []game.ProposedAction{{
		Type:       game.ActionMoveUnit,
		Parameters: map[string]any{"unit_id": u.ID, "x": 3, "y": 2},
	}}}
	rec := mgr.ProcessAgentTurn(context.Background(), st, turn.Agent{ID: "a1", Decide: dec})

	if rec.Outcome != ports.TurnSuccess {
		t.Fatalf("outcome = %s: %s", rec.Outcome, rec.ErrorMessage)
	}
	if len(rec.Results) != 1 || !rec.Results[0].Success {
		t.Fatalf("results = %+v", rec.Results)
	}
	if u.X != 3 {
		t.Fatalf("unit x = %d, want 3", u.X)
	}
	if metrics.turns["a1"] != 1 || metrics.actions["a1"] != 1 {
		t.Fatalf("metrics = %+v", metrics)
	}
	// One action_executed plus the turn_completed marker.
	if got := len(events.byAgent["a1"]); got != 2 {
		t.Fatalf("stored events = %d, want 2", got)
	}
}

func TestProcessAgentTurn_TimeoutLosesTurnWithoutMutation(t *testing.T) {
	st := newPlayingState(t)
	u := enroll(t, st, "a1", 2, 2)
	mgr, metrics, _ := newManager()
	mgr.Timeout = 20 * time.Millisecond

	dec := fakeDecider{block: true, actions: []game.ProposedAction{{
		Type:       game.ActionMoveUnit,
		Parameters: map[string]any{"unit_id": u.ID, "x": 3, "y": 2},
	}}}
	rec := mgr.ProcessAgentTurn(context.Background(), st, turn.Agent{ID: "a1", Decide: dec})

	if rec.Outcome != ports.TurnTimeout {
		t.Fatalf("outcome = %s, want timeout", rec.Outcome)
	}
	if len(rec.Actions) != 0 || len(rec.Results) != 0 {
		t.Fatalf("timed out turn must carry no actions: %+v", rec)
	}
	if u.X != 2 || u.HasMoved {
		t.Fatal("timed out turn must not touch the state")
	}
	if metrics.outcomes["a1"] != ports.TurnTimeout {
		t.Fatalf("recorded outcome = %s", metrics.outcomes["a1"])
	}
}

func TestProcessAgentTurn_DeciderErrorLosesTurn(t *testing.T) {
	st := newPlayingState(t)
	enroll(t, st, "a1", 2, 2)
	mgr, _, _ := newManager()

	dec := fakeDecider{err: errors.New("model unavailable")}
	rec := mgr.ProcessAgentTurn(context.Background(), st, turn.Agent{ID: "a1", Decide: dec})

	if rec.Outcome != ports.TurnError {
		t.Fatalf("outcome = %s, want error", rec.Outcome)
	}
	if rec.ErrorMessage != "model unavailable" {
		t.Fatalf("error = %q", rec.ErrorMessage)
	}
	if len(rec.Results) != 0 {
		t.Fatal("failed decision must execute nothing")
	}
}

func TestProcessAgentTurn_TruncatesToActionCap(t *testing.T) {
	st := newPlayingState(t)
	enroll(t, st, "a1", 2, 2)
	mgr, _, _ := newManager()
	mgr.MaxActions = 2

	var proposed []game.ProposedAction
	for i := 0; i < 6; i++ {
		proposed = append(proposed, game.ProposedAction{
			Type:       game.ActionSendMessage,
			Parameters: map[string]any{"message": "hi"},
		})
	}
	rec := mgr.ProcessAgentTurn(context.Background(), st, turn.Agent{ID: "a1", Decide: fakeDecider{actions: proposed}})

	if len(rec.Actions) != 2 || len(rec.Results) != 2 {
		t.Fatalf("executed %d actions, want the cap of 2", len(rec.Results))
	}
	if rec.Outcome != ports.TurnSuccess {
		t.Fatalf("outcome = %s", rec.Outcome)
	}
}

func TestProcessAgentTurn_CriticalFailureAbandonsTurn(t *testing.T) {
	st := newPlayingState(t)
	u := enroll(t, st, "a1", 2, 2)
	mgr, _, _ := newManager()
	// Shrink the grid under the processor so the move handler panics.
	st.Grid = st.Grid[:1]

	dec := fakeDecider{actions: []game.ProposedAction{
		{Type: game.ActionMoveUnit, Parameters: map[string]any{"unit_id": u.ID, "x": 3, "y": 2}},
		{Type: game.ActionSendMessage, Parameters: map[string]any{"message": "never sent"}},
	}}
	rec := mgr.ProcessAgentTurn(context.Background(), st, turn.Agent{ID: "a1", Decide: dec})

	if rec.Outcome != ports.TurnError {
		t.Fatalf("outcome = %s, want error", rec.Outcome)
	}
	if len(rec.Results) != 1 {
		t.Fatalf("executed %d actions, the turn should stop at the critical one", len(rec.Results))
	}
}

func TestRunRound_RotationAndRoundEnd(t *testing.T) {
	st := newPlayingState(t)
	enroll(t, st, "a1", 2, 2)
	u2 := enroll(t, st, "a2", 7, 7)
	u2.HasMoved = true
	mgr, _, _ := newManager()

	agents := []turn.Agent{
		{ID: "a1", Decide: fakeDecider{}},
		{ID: "a2", Decide: fakeDecider{}},
	}
	records := mgr.RunRound(context.Background(), st, agents)

	if len(records) != 2 {
		t.Fatalf("records = %d, want one per agent", len(records))
	}
	if st.TurnNumber != 2 {
		t.Fatalf("turn number = %d, want 2 after a full rotation", st.TurnNumber)
	}
	if u2.HasMoved {
		t.Fatal("round end should reset turn flags")
	}
}

func TestRunRound_SkipsEliminatedAgents(t *testing.T) {
	st := newPlayingState(t)
	enroll(t, st, "a1", 2, 2)
	dead := enroll(t, st, "a2", 7, 7)
	dead.TakeDamage(100)
	mgr, _, _ := newManager()

	calls := &callCounter{}
	agents := []turn.Agent{
		{ID: "a1", Decide: calls},
		{ID: "a2", Decide: calls},
	}
	records := mgr.RunRound(context.Background(), st, agents)

	if len(records) != 1 || records[0].AgentID != "a1" {
		t.Fatalf("records = %+v, only the live agent should act", records)
	}
	if calls.count() != 1 {
		t.Fatalf("decide calls = %d, want 1", calls.count())
	}
}

func TestRunRound_StopsWhenMatchEnds(t *testing.T) {
	st := newPlayingState(t)
	enroll(t, st, "a1", 2, 2)
	enroll(t, st, "a2", 7, 7)
	st.Phase = game.PhaseEnded
	mgr, _, _ := newManager()

	records := mgr.RunRound(context.Background(), st, []turn.Agent{
		{ID: "a1", Decide: fakeDecider{}},
		{ID: "a2", Decide: fakeDecider{}},
	})
	if len(records) != 0 {
		t.Fatalf("an ended match should process no turns, got %d", len(records))
	}
}

type fakeDecider struct {
	actions []game.ProposedAction
	err     error
	block   bool
}

func (f fakeDecider) ProposeActions(ctx context.Context, view game.AgentView) ([]game.ProposedAction, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.actions, f.err
}

type callCounter struct {
	mu sync.Mutex
	n  int
}

func (c *callCounter) ProposeActions(ctx context.Context, view game.AgentView) ([]game.ProposedAction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return nil, nil
}

func (c *callCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type recordingMetrics struct {
	mu       sync.Mutex
	turns    map[string]int
	actions  map[string]int
	outcomes map[string]ports.TurnOutcome
}

func (r *recordingMetrics) RecordTurn(agentID string, outcome ports.TurnOutcome, processing time.Duration, actions int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.turns == nil {
		r.turns = map[string]int{}
		r.outcomes = map[string]ports.TurnOutcome{}
	}
	r.turns[agentID]++
	r.outcomes[agentID] = outcome
}

func (r *recordingMetrics) RecordAction(agentID string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.actions == nil {
		r.actions = map[string]int{}
	}
	r.actions[agentID]++
}

type recordingEvents struct {
	mu      sync.Mutex
	byAgent map[string][]game.Event
}

func (r *recordingEvents) Append(ctx context.Context, agentID string, events []game.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byAgent == nil {
		r.byAgent = map[string][]game.Event{}
	}
	r.byAgent[agentID] = append(r.byAgent[agentID], events...)
	return nil
}

func (r *recordingEvents) ListByAgentID(ctx context.Context, agentID string, limit int) ([]game.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]game.Event(nil), r.byAgent[agentID]...), nil
}

var (
	_ ports.DecisionMaker   = fakeDecider{}
	_ ports.DecisionMaker   = (*callCounter)(nil)
	_ ports.TurnMetrics     = (*recordingMetrics)(nil)
	_ ports.EventRepository = (*recordingEvents)(nil)
)
