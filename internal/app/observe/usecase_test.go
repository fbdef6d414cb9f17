package observe_test

import (
	"context"
	"errors"
	"testing"

	"gridwar/internal/app/observe"
	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

func TestExecute_ReturnsLatestView(t *testing.T) {
	board := &fakeBoard{views: map[string]game.AgentView{
		"a1": {GameID: "g1", AgentID: "a1", TurnNumber: 4},
	}}
	uc := observe.UseCase{Board: board}

	view, err := uc.Execute(context.Background(), observe.Request{AgentID: "a1"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if view.GameID != "g1" || view.TurnNumber != 4 {
		t.Fatalf("view = %+v", view)
	}
}

func TestExecute_RequiresAgentID(t *testing.T) {
	uc := observe.UseCase{Board: &fakeBoard{}}
	_, err := uc.Execute(context.Background(), observe.Request{})
	if !errors.Is(err, observe.ErrInvalidRequest) {
		t.Fatalf("err = %v, want invalid request", err)
	}
}

func TestExecute_UnknownAgentIsNotFound(t *testing.T) {
	uc := observe.UseCase{Board: &fakeBoard{}}
	_, err := uc.Execute(context.Background(), observe.Request{AgentID: "ghost"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

type fakeBoard struct {
	snapshot *game.Snapshot
	views    map[string]game.AgentView
}

func (b *fakeBoard) PublishRound(snapshot game.Snapshot, views map[string]game.AgentView) {
	b.snapshot = &snapshot
	b.views = views
}

func (b *fakeBoard) LatestSnapshot() (game.Snapshot, bool) {
	if b.snapshot == nil {
		return game.Snapshot{}, false
	}
	return *b.snapshot, true
}

func (b *fakeBoard) LatestView(agentID string) (game.AgentView, bool) {
	view, ok := b.views[agentID]
	return view, ok
}

var _ ports.ViewBoard = (*fakeBoard)(nil)
