package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	repo "calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	r := New(log.NewNop(), Options{}).(*implRepository)
	n := 0
	r.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return r
}

func ev(id, title string, start datemath.Date) model.CalendarEvent {
	return model.CalendarEvent{ID: id, Title: title, StartDate: start, Type: model.EventTypeOther}
}

func TestAppendEvents_AssignsMissingAndDuplicateIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	day := datemath.NewDate(2025, time.July, 1)

	stored, err := r.AppendEvents(ctx, repo.AppendEventsOptions{
		SessionID: "s1",
		Events: []model.CalendarEvent{
			ev("a", "first", day),
			ev("", "no id", day),
			ev("a", "same id in batch", day),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "gen-1", "gen-2"}
	for i, e := range stored {
		if e.ID != want[i] {
			t.Errorf("stored[%d].ID = %q, want %q", i, e.ID, want[i])
		}
	}

	// A later batch colliding with an earlier one is renamed too.
	stored, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{
		SessionID: "s1",
		Events:    []model.CalendarEvent{ev("gen-1", "again", day)},
	})
	if stored[0].ID != "gen-3" {
		t.Errorf("expected renamed id gen-3, got %q", stored[0].ID)
	}
}

func TestAppendEvents_ConcatenatesBatches(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	day := datemath.NewDate(2025, time.July, 1)

	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{ev("1", "one", day)}})
	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{ev("2", "two", day), ev("3", "three", day)}})
	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s2", Events: []model.CalendarEvent{ev("9", "other session", day)}})

	got, err := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "1" || got[2].ID != "3" {
		t.Fatalf("unexpected working set: %+v", got)
	}

	// Returned slice is a copy.
	got[0].Title = "changed"
	again, _ := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1"})
	if again[0].Title != "one" {
		t.Errorf("ListEvents leaked internal slice")
	}
}

func TestListEvents_MonthFilter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	end := datemath.NewDate(2025, time.August, 2)
	spanning := ev("span", "spans months", datemath.NewDate(2025, time.July, 30))
	spanning.EndDate = &end

	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{
		ev("jul", "july", datemath.NewDate(2025, time.July, 4)),
		spanning,
		ev("sep", "september", datemath.NewDate(2025, time.September, 1)),
	}})

	got, _ := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1", Year: 2025, Month: time.August})
	if len(got) != 1 || got[0].ID != "span" {
		t.Errorf("August filter = %+v, want only the spanning event", got)
	}
}

func TestListEvents_UnknownSession(t *testing.T) {
	r := newTestRepo(t)
	got, err := r.ListEvents(context.Background(), repo.ListEventsOptions{SessionID: "nobody"})
	if err != nil || len(got) != 0 {
		t.Errorf("ListEvents(unknown) = %v, %v", got, err)
	}
	if r.sessions.Len() != 0 {
		t.Errorf("reading must not create a session")
	}
}

func TestGetEvent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{
		ev("x", "found", datemath.NewDate(2025, time.July, 4)),
	}})

	got, err := r.GetEvent(ctx, repo.GetEventOptions{SessionID: "s1", ID: "x"})
	if err != nil || got.Title != "found" {
		t.Errorf("GetEvent(x) = %+v, %v", got, err)
	}

	got, err = r.GetEvent(ctx, repo.GetEventOptions{SessionID: "s1", ID: "missing"})
	if err != nil || got.ID != "" {
		t.Errorf("GetEvent(missing) = %+v, %v", got, err)
	}
}

func TestMissingSession(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.AppendEvents(ctx, repo.AppendEventsOptions{}); err != repo.ErrMissingSession {
		t.Errorf("AppendEvents error = %v", err)
	}
	if _, err := r.ListEvents(ctx, repo.ListEventsOptions{}); err != repo.ErrMissingSession {
		t.Errorf("ListEvents error = %v", err)
	}
	if err := r.BeginProcessing(ctx, ""); err != repo.ErrMissingSession {
		t.Errorf("BeginProcessing error = %v", err)
	}
}

func TestProcessingState(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	st, _ := r.GetState(ctx, "s1")
	if st.Status != model.StatusIdle {
		t.Fatalf("initial status = %s, want IDLE", st.Status)
	}

	_ = r.BeginProcessing(ctx, "s1")
	_ = r.BeginProcessing(ctx, "s1")

	_ = r.FinishProcessing(ctx, repo.FinishProcessingOptions{SessionID: "s1", Status: model.StatusError, Message: "boom"})
	st, _ = r.GetState(ctx, "s1")
	if st.Status != model.StatusProcessing {
		t.Errorf("status with one request outstanding = %s, want PROCESSING", st.Status)
	}

	_ = r.FinishProcessing(ctx, repo.FinishProcessingOptions{SessionID: "s1", Status: model.StatusSuccess})
	st, _ = r.GetState(ctx, "s1")
	if st.Status != model.StatusSuccess || st.Message != "" {
		t.Errorf("final state = %+v, want SUCCESS", st)
	}

	if err := r.FinishProcessing(ctx, repo.FinishProcessingOptions{SessionID: "s1", Status: model.StatusSuccess}); err != repo.ErrNotProcessing {
		t.Errorf("unbalanced finish error = %v", err)
	}
	if err := r.FinishProcessing(ctx, repo.FinishProcessingOptions{SessionID: "s1", Status: model.StatusIdle}); err != repo.ErrInvalidOutcome {
		t.Errorf("invalid outcome error = %v", err)
	}
}

func TestProcessingState_SurvivesEviction(t *testing.T) {
	r := New(log.NewNop(), Options{MaxSessions: 1}).(*implRepository)
	ctx := context.Background()

	if err := r.BeginProcessing(ctx, "s1"); err != nil {
		t.Fatalf("BeginProcessing: %v", err)
	}
	// s2 pushes s1 out of the LRU while its extraction runs.
	_ = r.BeginProcessing(ctx, "s2")

	if _, err := r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{
		ev("a", "kept", datemath.NewDate(2025, time.July, 4)),
	}}); err != nil {
		t.Fatalf("AppendEvents: %v", err)
	}
	if err := r.FinishProcessing(ctx, repo.FinishProcessingOptions{SessionID: "s1", Status: model.StatusSuccess}); err != nil {
		t.Fatalf("FinishProcessing after eviction: %v", err)
	}

	st, _ := r.GetState(ctx, "s1")
	if st.Status != model.StatusSuccess {
		t.Errorf("state = %+v, want SUCCESS", st)
	}
	if events, _ := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1"}); len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
	if _, ok := r.pinned["s1"]; ok {
		t.Errorf("s1 still pinned after its extraction finished")
	}
	if _, ok := r.pinned["s2"]; !ok {
		t.Errorf("s2 unpinned while in flight")
	}
}

func TestSessionExpiry(t *testing.T) {
	r := New(log.NewNop(), Options{TTL: 20 * time.Millisecond}).(*implRepository)
	ctx := context.Background()
	_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{
		ev("x", "short lived", datemath.NewDate(2025, time.July, 4)),
	}})

	time.Sleep(60 * time.Millisecond)

	got, _ := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1"})
	if len(got) != 0 {
		t.Errorf("expected expired session to be empty, got %d events", len(got))
	}
}

func TestConcurrentAppends(t *testing.T) {
	r := New(log.NewNop(), Options{}).(*implRepository)
	ctx := context.Background()
	day := datemath.NewDate(2025, time.July, 1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.AppendEvents(ctx, repo.AppendEventsOptions{SessionID: "s1", Events: []model.CalendarEvent{
				ev("", "a", day), ev("", "b", day),
			}})
		}()
	}
	wg.Wait()

	got, _ := r.ListEvents(ctx, repo.ListEventsOptions{SessionID: "s1"})
	if len(got) != 40 {
		t.Fatalf("expected 40 events, got %d", len(got))
	}
	seen := make(map[string]bool)
	for _, e := range got {
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
}
