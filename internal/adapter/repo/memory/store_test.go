package memory_test

import (
	"context"
	"errors"
	"testing"

	"gridwar/internal/adapter/repo/memory"
	"gridwar/internal/app/ports"
	"gridwar/internal/domain/game"
)

func TestEventRepo_AppendAndList(t *testing.T) {
	repo := memory.NewEventRepo(memory.NewStore())
	ctx := context.Background()

	for turn := 1; turn <= 5; turn++ {
		err := repo.Append(ctx, "a1", []game.Event{{Type: "turn_completed", Turn: turn}})
		if err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.ListByAgentID(ctx, "a1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 || all[0].Turn != 1 || all[4].Turn != 5 {
		t.Fatalf("events = %+v", all)
	}

	// The limit keeps the most recent entries, still chronological.
	tail, err := repo.ListByAgentID(ctx, "a1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail) != 2 || tail[0].Turn != 4 || tail[1].Turn != 5 {
		t.Fatalf("tail = %+v", tail)
	}
}

func TestEventRepo_ReturnsCopies(t *testing.T) {
	repo := memory.NewEventRepo(memory.NewStore())
	ctx := context.Background()
	if err := repo.Append(ctx, "a1", []game.Event{{Type: "turn_completed", Turn: 1}}); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.ListByAgentID(ctx, "a1", 0)
	got[0].Turn = 99
	again, _ := repo.ListByAgentID(ctx, "a1", 0)
	if again[0].Turn != 1 {
		t.Fatal("listed slice must not alias the stored one")
	}
}

func TestEventRepo_UnknownAgentIsEmpty(t *testing.T) {
	repo := memory.NewEventRepo(memory.NewStore())
	events, err := repo.ListByAgentID(context.Background(), "ghost", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("events = %+v, want none", events)
	}
}

func TestArchiveRepo_SaveAndGet(t *testing.T) {
	repo := memory.NewArchiveRepo(memory.NewStore())
	ctx := context.Background()
	record := ports.MatchRecord{GameID: "g1", WinnerID: "a2", TurnCount: 12}

	if err := repo.SaveMatch(ctx, record); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetMatch(ctx, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if got.WinnerID != "a2" || got.TurnCount != 12 {
		t.Fatalf("record = %+v", got)
	}
}

func TestArchiveRepo_DuplicateSaveConflicts(t *testing.T) {
	repo := memory.NewArchiveRepo(memory.NewStore())
	ctx := context.Background()
	if err := repo.SaveMatch(ctx, ports.MatchRecord{GameID: "g1"}); err != nil {
		t.Fatal(err)
	}
	err := repo.SaveMatch(ctx, ports.MatchRecord{GameID: "g1"})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestArchiveRepo_MissingMatchNotFound(t *testing.T) {
	repo := memory.NewArchiveRepo(memory.NewStore())
	_, err := repo.GetMatch(context.Background(), "nope")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestTxManager_RunsTheFunction(t *testing.T) {
	tx := memory.NewTxManager()
	called := false
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("err = %v, called = %v", err, called)
	}

	wantErr := errors.New("rollback")
	if err := tx.RunInTx(context.Background(), func(ctx context.Context) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the function's error", err)
	}
}
