package match

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gridwar/internal/app/ports"
	"gridwar/internal/app/turn"
	"gridwar/internal/domain/game"
)

// Runner drives one match through its phases: setup turns, the optional
// balance review, playing rounds until a victory condition or the turn
// limit, then archival.
type Runner struct {
	Turns    *turn.Manager
	Agents   []turn.Agent
	Reviewer ports.BalanceReviewer
	Board    ports.ViewBoard
	Archive  ports.MatchArchive
	Tx       ports.TxManager
	MaxTurns int
	Log      *slog.Logger
	Now      func() time.Time
}

func (r *Runner) maxTurns() int {
	if r.MaxTurns > 0 {
		return r.MaxTurns
	}
	return game.DefaultMaxTurns
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// Run plays the match to completion. The state must be fresh (setup
// phase). Run owns the state until it returns; everything published goes
// through the board as copies.
func (r *Runner) Run(ctx context.Context, st *game.State) error {
	startedAt := r.now()
	log := r.log().With("game_id", st.GameID)
	log.Info("match starting", "agents", len(r.Agents), "max_turns", r.maxTurns())

	// Setup: every agent gets one bounded turn to create a faction and
	// register designs.
	for _, agent := range r.Agents {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rec := r.Turns.ProcessAgentTurn(ctx, st, agent)
		log.Info("setup turn complete", "agent_id", agent.ID, "outcome", string(rec.Outcome))
	}

	if err := st.TransitionTo(game.PhaseBalancing); err != nil {
		return err
	}
	r.reviewBalance(ctx, st)

	if err := st.TransitionTo(game.PhasePlaying); err != nil {
		return err
	}
	st.RecomputeVisibility()
	r.publish(st)

	for ctx.Err() == nil && st.Phase == game.PhasePlaying {
		records := r.Turns.RunRound(ctx, st, r.Agents)
		winner, ended := st.EvaluateVictory(r.maxTurns())
		r.publish(st)
		log.Info("round complete",
			"turn", st.TurnNumber,
			"turns_taken", len(records),
			"ended", ended,
		)
		if ended {
			log.Info("match ended", "winner", winner)
			break
		}
	}
	if st.Phase != game.PhaseEnded {
		_ = st.TransitionTo(game.PhaseEnded)
		r.publish(st)
	}

	return r.archive(ctx, st, startedAt)
}

// reviewBalance asks the optional reviewer for multiplier adjustments.
// Review failures are logged and the defaults stand.
func (r *Runner) reviewBalance(ctx context.Context, st *game.State) {
	if r.Reviewer == nil {
		return
	}
	adjustments, err := r.Reviewer.ReviewBalance(ctx, st.BuildSnapshot())
	if err != nil {
		r.log().Warn("balance review failed, keeping defaults", "error", err)
		return
	}
	st.Balance.Apply(adjustments)
	st.LogEvent("balance_adjusted", map[string]any{"adjustments": adjustments})
}

func (r *Runner) publish(st *game.State) {
	if r.Board == nil {
		return
	}
	views := make(map[string]game.AgentView, len(st.TurnOrder))
	for _, agentID := range st.TurnOrder {
		views[agentID] = st.BuildAgentView(agentID)
	}
	r.Board.PublishRound(st.BuildSnapshot(), views)
}

func (r *Runner) archive(ctx context.Context, st *game.State, startedAt time.Time) error {
	if r.Archive == nil {
		return nil
	}
	finalState, err := json.Marshal(st.BuildSnapshot())
	if err != nil {
		return err
	}
	record := ports.MatchRecord{
		GameID:     st.GameID,
		WinnerID:   st.WinnerID,
		TurnCount:  st.TurnNumber,
		Phase:      string(st.Phase),
		StartedAt:  startedAt,
		EndedAt:    r.now(),
		FinalState: finalState,
	}
	save := func(ctx context.Context) error {
		return r.Archive.SaveMatch(ctx, record)
	}
	if r.Tx != nil {
		return r.Tx.RunInTx(ctx, save)
	}
	return save(ctx)
}
