package scheduler

import (
	"testing"
	"time"

	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(DueEvent{ItemID: "later", At: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(DueEvent{ItemID: "sooner", At: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ItemID != "sooner" || second.ItemID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ItemID, second.ItemID)
	}
}

func TestEngineReplaceDropsQueuedEvents(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(DueEvent{ItemID: "old", At: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	err := engine.Replace([]DueEvent{
		{ItemID: "new", At: now.Add(40 * time.Millisecond)},
		{ItemID: "no-time"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := engine.Pending(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}

	ev := waitEvent(t, engine.C(), time.Second)
	if ev.ItemID != "new" {
		t.Fatalf("got %q, want new", ev.ItemID)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected event %q", ev.ItemID)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(DueEvent{ItemID: "evt", At: at}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(DueEvent{ItemID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestStoppedEngineRejectsWork(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	engine.Stop()

	if _, ok := <-engine.C(); ok {
		t.Fatalf("expected closed channel")
	}
	if err := engine.Schedule(DueEvent{At: time.Now()}); err != ErrStopped {
		t.Fatalf("schedule after stop: %v", err)
	}
	if err := engine.Replace(nil); err != ErrStopped {
		t.Fatalf("replace after stop: %v", err)
	}
}

func TestPlanDueTransitions(t *testing.T) {
	now := time.Date(2026, 3, 30, 12, 0, 0, 0, time.UTC)
	state := model.ApplicationState{Sections: []model.Section{{
		ID:   "s1",
		Name: "Bank",
		Items: []model.ChecklistItem{
			{ID: "far", Title: "Far", Due: "2026-04-20"},
			{ID: "soon", Title: "Soon", Due: "2026-04-02"},
			{ID: "past", Title: "Past", Due: "2026-03-01"},
			{ID: "done", Title: "Done", Due: "2026-04-20", Done: true},
			{ID: "none", Title: "None"},
			{ID: "bad", Title: "Bad", Due: "someday"},
		},
	}}}

	got := map[string]time.Time{}
	for _, ev := range Plan(state, now) {
		got[ev.ItemID+"/"+string(ev.Kind)] = ev.At
		if ev.SectionID != "s1" {
			t.Fatalf("section id = %q", ev.SectionID)
		}
	}

	want := map[string]time.Time{
		"far/due_soon":  time.Date(2026, 4, 20-metrics.DueSoonDays, 0, 0, 0, 0, time.UTC),
		"far/overdue":  time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC),
		"soon/overdue": time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("planned %v, want %v", got, want)
	}
	for k, at := range want {
		if !got[k].Equal(at) {
			t.Fatalf("%s at %v, want %v", k, got[k], at)
		}
	}
}

func waitEvent(t *testing.T, ch <-chan DueEvent, timeout time.Duration) DueEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return DueEvent{}
	}
}
