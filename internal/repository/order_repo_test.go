package repository

import (
	"testing"
	"time"

	"bakehouse/internal/models"
)

func TestCreate_SequentialIDs(t *testing.T) {
	t.Parallel()

	s := NewOrderMemory()

	first := s.Create("flan_vanilla", "oven_1", 1, nil)
	second := s.Create("flan_caramel", "oven_2", 2, map[string]any{"priority": "HIGH"})

	if first.ID != "CMD-0001" || second.ID != "CMD-0002" {
		t.Fatalf("unexpected ids: %s, %s", first.ID, second.ID)
	}
	if first.Stage != models.StageSubmitted || first.Progress != 0 {
		t.Fatalf("fresh order not submitted/0: %+v", first)
	}
	if first.History == nil || len(first.History) != 0 {
		t.Fatalf("history must start empty, got %#v", first.History)
	}
	if first.StartedAt.IsZero() {
		t.Fatalf("start time not stamped")
	}
	if s.Len() != 2 {
		t.Fatalf("want 2 orders, got %d", s.Len())
	}
}

func TestGet_DeepCopies(t *testing.T) {
	t.Parallel()

	s := NewOrderMemory()
	created := s.Create("flan_vanilla", "oven_1", 1, map[string]any{"priority": "NORMAL"})

	snap, ok := s.Get(created.ID)
	if !ok {
		t.Fatalf("order missing")
	}

	// Mutating the snapshot must not leak into the ledger.
	snap.Stage = models.StageBaking
	snap.Progress = 85
	snap.Options["priority"] = "HACKED"
	snap.History = append(snap.History, models.StageRecord{Stage: models.StageBaking})

	fresh, _ := s.Get(created.ID)
	if fresh.Stage != models.StageSubmitted || fresh.Progress != 0 {
		t.Fatalf("snapshot mutation leaked: %+v", fresh)
	}
	if fresh.Options["priority"] != "NORMAL" {
		t.Fatalf("options aliased: %#v", fresh.Options)
	}
	if len(fresh.History) != 0 {
		t.Fatalf("history aliased: %#v", fresh.History)
	}
}

func TestAdvanceStage_ProgressNeverRegresses(t *testing.T) {
	t.Parallel()

	s := NewOrderMemory()
	o := s.Create("flan_vanilla", "oven_1", 1, nil)

	now := time.Now().UTC()
	if !s.AdvanceStage(o.ID, models.StageBaking, 85, models.StageRecord{Stage: models.StageBaking, Progress: 85, At: now}) {
		t.Fatalf("advance to baking failed")
	}
	// A lower checkpoint must not pull progress back.
	if !s.AdvanceStage(o.ID, models.StageCooling, 60, models.StageRecord{Stage: models.StageCooling, Progress: 60, At: now}) {
		t.Fatalf("advance to cooling failed")
	}

	got, _ := s.Get(o.ID)
	if got.Progress != 85 {
		t.Fatalf("progress regressed: %d", got.Progress)
	}
	if got.Stage != models.StageCooling {
		t.Fatalf("stage not updated: %s", got.Stage)
	}
	if len(got.History) != 2 {
		t.Fatalf("want 2 stage records, got %d", len(got.History))
	}
}

func TestComplete_TerminalStage(t *testing.T) {
	t.Parallel()

	s := NewOrderMemory()
	o := s.Create("flan_vanilla", "oven_1", 1, nil)

	finish := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if !s.Complete(o.ID, finish) {
		t.Fatalf("Complete failed")
	}

	got, _ := s.Get(o.ID)
	if got.Stage != models.StageComplete || got.Progress != 100 {
		t.Fatalf("not terminal: %+v", got)
	}
	if got.FinishedAt == nil || !got.FinishedAt.Equal(finish) {
		t.Fatalf("finish time wrong: %v", got.FinishedAt)
	}
}

func TestForget_MakesOrderVanish(t *testing.T) {
	t.Parallel()

	s := NewOrderMemory()
	o := s.Create("flan_vanilla", "oven_1", 1, nil)

	s.Forget(o.ID)

	if _, ok := s.Get(o.ID); ok {
		t.Fatalf("order still present after Forget")
	}
	if s.AdvanceStage(o.ID, models.StageBaking, 85, models.StageRecord{}) {
		t.Fatalf("AdvanceStage on vanished order must report false")
	}
	if s.Complete(o.ID, time.Now()) {
		t.Fatalf("Complete on vanished order must report false")
	}

	// The counter keeps moving forward regardless.
	next := s.Create("flan_orange", "oven_2", 1, nil)
	if next.ID != "CMD-0002" {
		t.Fatalf("counter reused an id: %s", next.ID)
	}
}
