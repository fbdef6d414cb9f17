package replay_test

import (
	"context"
	"errors"
	"testing"

	"gridwar/internal/app/ports"
	"gridwar/internal/app/replay"
	"gridwar/internal/domain/game"
)

func TestExecute_ReturnsAgentEvents(t *testing.T) {
	repo := &fakeEvents{events: map[string][]game.Event{
		"a1": {{Type: "turn_completed", Turn: 1}, {Type: "turn_completed", Turn: 2}},
	}}
	uc := replay.UseCase{Events: repo}

	resp, err := uc.Execute(context.Background(), replay.Request{AgentID: "a1", Limit: 10})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.AgentID != "a1" || len(resp.Events) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if repo.lastLimit != 10 {
		t.Fatalf("limit passed through = %d, want 10", repo.lastLimit)
	}
}

func TestExecute_DefaultsTheLimit(t *testing.T) {
	repo := &fakeEvents{}
	uc := replay.UseCase{Events: repo}

	if _, err := uc.Execute(context.Background(), replay.Request{AgentID: "a1"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Fatalf("default limit = %d, want 100", repo.lastLimit)
	}
}

func TestExecute_RequiresAgentID(t *testing.T) {
	uc := replay.UseCase{Events: &fakeEvents{}}
	_, err := uc.Execute(context.Background(), replay.Request{})
	if !errors.Is(err, replay.ErrInvalidRequest) {
		t.Fatalf("err = %v, want invalid request", err)
	}
}

func TestExecute_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeEvents{err: errors.New("backend down")}
	uc := replay.UseCase{Events: repo}
	if _, err := uc.Execute(context.Background(), replay.Request{AgentID: "a1"}); err == nil {
		t.Fatal("repository error should surface")
	}
}

type fakeEvents struct {
	events    map[string][]game.Event
	err       error
	lastLimit int
}

func (f *fakeEvents) Append(ctx context.Context, agentID string, events []game.Event) error {
	if f.events == nil {
		f.events = map[string][]game.Event{}
	}
	f.events[agentID] = append(f.events[agentID], events...)
	return f.err
}

func (f *fakeEvents) ListByAgentID(ctx context.Context, agentID string, limit int) ([]game.Event, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.events[agentID], nil
}

var _ ports.EventRepository = (*fakeEvents)(nil)
