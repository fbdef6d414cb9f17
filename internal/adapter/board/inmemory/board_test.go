package inmemory_test

import (
	"testing"

	"gridwar/internal/adapter/board/inmemory"
	"gridwar/internal/domain/game"
)

func TestBoard_NothingPublishedYet(t *testing.T) {
	board := inmemory.NewBoard()
	if _, ok := board.LatestSnapshot(); ok {
		t.Fatal("fresh board should report no snapshot")
	}
	if _, ok := board.LatestView("a1"); ok {
		t.Fatal("fresh board should report no views")
	}
}

func TestBoard_LatestRoundWins(t *testing.T) {
	board := inmemory.NewBoard()
	board.PublishRound(game.Snapshot{TurnNumber: 1}, map[string]game.AgentView{
		"a1": {AgentID: "a1", TurnNumber: 1},
	})
	board.PublishRound(game.Snapshot{TurnNumber: 2}, map[string]game.AgentView{
		"a1": {AgentID: "a1", TurnNumber: 2},
		"a2": {AgentID: "a2", TurnNumber: 2},
	})

	snap, ok := board.LatestSnapshot()
	if !ok || snap.TurnNumber != 2 {
		t.Fatalf("snapshot = %+v, want turn 2", snap)
	}
	view, ok := board.LatestView("a2")
	if !ok || view.TurnNumber != 2 {
		t.Fatalf("view = %+v", view)
	}
	if _, ok := board.LatestView("ghost"); ok {
		t.Fatal("unknown agent should have no view")
	}
}
