package agent

import (
	"ants-bot/internal/engine"
	"context"
	"testing"
)

func TestReplay(t *testing.T) {
	// Записываем партию RandomBot, затем проигрываем ее заново
	input := game(
		"turn 1", "a 3 4 0", "a 8 8 0", "go",
		"turn 2", "a 3 5 0", "a 8 9 0", "f 3 7", "go",
	)
	rec, _, err := runGame(t, &RandomBot{Seed: 5}, input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	res, err := Replay(context.Background(), rec.Transcript, &RandomBot{Seed: 5})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.Matches() {
		t.Errorf("same seed diverged at %d: %q vs %q", res.Diverged, res.Output, res.Recorded)
	}
	if res.Turns != 2 {
		t.Errorf("Turns = %d, want 2", res.Turns)
	}

	res, err = Replay(context.Background(), rec.Transcript, funcBot(func(context.Context, *engine.World) error { return nil }))
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Matches() || res.Diverged != 1 {
		t.Errorf("idle bot should diverge at line 1, got %d", res.Diverged)
	}
}
