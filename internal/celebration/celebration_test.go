package celebration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"
)

type memStore struct {
	data   map[string]string
	sets   int
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Keys(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

type fakeBurst struct {
	starts, stops int
	running       bool
}

func (b *fakeBurst) Start(w, h float64) bool {
	if b.running {
		return false
	}
	b.running = true
	b.starts++
	return true
}

func (b *fakeBurst) Stop() bool {
	if !b.running {
		return false
	}
	b.running = false
	b.stops++
	return true
}

var (
	allDone = Flags{Fajr: true, Dhuhr: true, Maghrib: true, Isha: true}
	today   = time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC)
)

func newTestCelebration(store Store, burst *fakeBurst) (*Celebration, *Panel) {
	panel := NewPanel(burst, func() (float64, float64) { return 800, 600 })
	c := New(store, panel, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = func() time.Time { return today }
	return c, panel
}

func TestFlagsAll(t *testing.T) {
	tests := []struct {
		flags Flags
		want  bool
	}{
		{allDone, true},
		{Flags{}, false},
		{Flags{Fajr: true, Dhuhr: true, Maghrib: true}, false},
		{Flags{Dhuhr: true, Maghrib: true, Isha: true}, false},
	}
	for _, tt := range tests {
		if got := tt.flags.All(); got != tt.want {
			t.Errorf("%+v.All() = %v, want %v", tt.flags, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key(today); got != "jannah_celebrated_2025-03-01" {
		t.Errorf("Key = %q", got)
	}
}

func TestCheckTriggersOnce(t *testing.T) {
	store := newMemStore()
	burst := &fakeBurst{}
	c, panel := newTestCelebration(store, burst)
	ctx := context.Background()

	triggered, err := c.Check(ctx, allDone)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !triggered {
		t.Fatal("first check did not trigger")
	}
	if burst.starts != 1 {
		t.Errorf("burst starts = %d, want 1", burst.starts)
	}
	if store.sets != 1 || store.data["jannah_celebrated_2025-03-01"] != "true" {
		t.Errorf("store = %v (%d sets), want one marker for today", store.data, store.sets)
	}
	if !panel.Visible() {
		t.Error("panel not visible after trigger")
	}

	for i := 0; i < 3; i++ {
		triggered, err = c.Check(ctx, allDone)
		if err != nil {
			t.Fatalf("repeat check: %v", err)
		}
		if triggered {
			t.Error("repeat check triggered again")
		}
	}
	if burst.starts != 1 || store.sets != 1 {
		t.Errorf("after repeats: starts = %d, sets = %d, want 1, 1", burst.starts, store.sets)
	}
}

func TestCheckRespectsExistingMarker(t *testing.T) {
	store := newMemStore()
	store.data["jannah_celebrated_2025-03-01"] = "true"
	burst := &fakeBurst{}
	c, _ := newTestCelebration(store, burst)

	triggered, err := c.Check(context.Background(), allDone)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if triggered || burst.starts != 0 {
		t.Errorf("triggered = %v, starts = %d, want no burst", triggered, burst.starts)
	}
}

func TestCheckIncompleteFlags(t *testing.T) {
	store := newMemStore()
	burst := &fakeBurst{}
	c, _ := newTestCelebration(store, burst)

	triggered, err := c.Check(context.Background(), Flags{Fajr: true, Isha: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if triggered || burst.starts != 0 || store.sets != 0 {
		t.Error("incomplete flags must not trigger or write")
	}
}

func TestCheckNewDayTriggersAgain(t *testing.T) {
	store := newMemStore()
	burst := &fakeBurst{}
	c, panel := newTestCelebration(store, burst)
	ctx := context.Background()

	c.Check(ctx, allDone)
	panel.Dismiss(today)

	c.now = func() time.Time { return today.AddDate(0, 0, 1) }
	triggered, err := c.Check(ctx, allDone)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !triggered || burst.starts != 2 {
		t.Errorf("next day: triggered = %v, starts = %d", triggered, burst.starts)
	}
	if _, ok := store.data["jannah_celebrated_2025-03-02"]; !ok {
		t.Error("missing marker for the next day")
	}
}

func TestCheckStoreError(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk gone")
	burst := &fakeBurst{}
	c, _ := newTestCelebration(store, burst)

	_, err := c.Check(context.Background(), allDone)
	if !errors.Is(err, store.getErr) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
	if burst.starts != 0 {
		t.Error("burst started despite store error")
	}
}

func TestCheckWithoutPanel(t *testing.T) {
	store := newMemStore()
	c := New(store, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = func() time.Time { return today }

	triggered, err := c.Check(context.Background(), allDone)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !triggered || store.sets != 1 {
		t.Errorf("triggered = %v, sets = %d, want marker recorded", triggered, store.sets)
	}
}

func TestResetAllowsSecondCelebration(t *testing.T) {
	store := newMemStore()
	burst := &fakeBurst{}
	c, panel := newTestCelebration(store, burst)

	if ok, _ := c.Check(context.Background(), allDone); !ok {
		t.Fatal("first check did not celebrate")
	}
	panel.Dismiss(today)

	if err := c.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, seen, _ := store.Get(context.Background(), Key(today)); seen {
		t.Error("marker still present after Reset")
	}

	ok, err := c.Check(context.Background(), allDone)
	if err != nil || !ok {
		t.Fatalf("check after reset = %v, %v, want a celebration", ok, err)
	}
	if burst.starts != 2 {
		t.Errorf("burst starts = %d, want 2", burst.starts)
	}
}

func TestDays(t *testing.T) {
	store := newMemStore()
	store.data[KeyPrefix+"2025-03-02"] = "true"
	store.data[KeyPrefix+"2025-02-28"] = "true"
	store.data["theme"] = "dark"
	c, _ := newTestCelebration(store, &fakeBurst{})

	days, err := c.Days(context.Background())
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	if want := []string{"2025-02-28", "2025-03-02"}; !slices.Equal(days, want) {
		t.Errorf("Days = %v, want %v", days, want)
	}
}
