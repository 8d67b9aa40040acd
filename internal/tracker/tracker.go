// Package tracker holds the state of the tracker form and keeps it in sync
// with the record backend.
//
// All state is owned by the game loop goroutine. Backend calls run on their
// own goroutines and hand results back through Post; Drain applies them.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/iburimskiy/sunnah-tracker/internal/celebration"
	"github.com/iburimskiy/sunnah-tracker/internal/config"
	"github.com/iburimskiy/sunnah-tracker/internal/record"
)

// Backend is the record service the tracker persists to.
type Backend interface {
	Get(ctx context.Context, date string) (record.Record, error)
	Update(ctx context.Context, date, field string, value any) (record.Record, error)
	List(ctx context.Context, skip, limit int) ([]record.Record, error)
	AnalyzeSentiment(ctx context.Context, text string) (record.Sentiment, error)
}

// Checker decides whether the current flags warrant a celebration.
type Checker interface {
	Check(ctx context.Context, flags celebration.Flags) (bool, error)
}

type Tracker struct {
	ctx     context.Context
	backend Backend
	checker Checker
	logger  *slog.Logger
	inbox   chan func()

	date      time.Time
	record    record.Record
	loading   bool
	analyzing bool
	stats     *record.Summary
	lastErr   error
}

// New creates a tracker showing the UTC calendar day of day, the same day
// celebration markers are keyed by. Call Load to fetch its record.
func New(ctx context.Context, backend Backend, checker Checker, logger *slog.Logger, day time.Time) *Tracker {
	day = day.UTC()
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return &Tracker{
		ctx:     ctx,
		backend: backend,
		checker: checker,
		logger:  logger,
		inbox:   make(chan func(), 64),
		date:    day,
		record:  record.Record{Date: day.Format(time.DateOnly)},
	}
}

// Post queues fn to run on the next Drain. Safe from any goroutine.
func (t *Tracker) Post(fn func()) {
	select {
	case t.inbox <- fn:
	case <-t.ctx.Done():
	}
}

// Drain applies every queued result and returns how many ran.
func (t *Tracker) Drain() int {
	n := 0
	for {
		select {
		case fn := <-t.inbox:
			fn()
			n++
		default:
			return n
		}
	}
}

func (t *Tracker) Date() time.Time        { return t.date }
func (t *Tracker) DateKey() string        { return t.date.Format(time.DateOnly) }
func (t *Tracker) Record() record.Record  { return t.record }
func (t *Tracker) Loading() bool          { return t.loading }
func (t *Tracker) Analyzing() bool        { return t.analyzing }
func (t *Tracker) Progress() int          { return t.record.Progress() }
func (t *Tracker) Feedback() string       { return t.record.Feedback() }
func (t *Tracker) Stats() *record.Summary { return t.stats }
func (t *Tracker) Err() error             { return t.lastErr }

// SunnahFlags returns the four Sunnah prayer flags of the displayed record.
func (t *Tracker) SunnahFlags() celebration.Flags {
	return celebration.Flags{
		Fajr:    t.record.FajrSunnah,
		Dhuhr:   t.record.DhuhrSunnah,
		Maghrib: t.record.MaghribSunnah,
		Isha:    t.record.IshaSunnah,
	}
}

// ChangeDate moves the displayed day by days and loads it. The form is empty
// until the new record arrives.
func (t *Tracker) ChangeDate(days int) {
	t.date = t.date.AddDate(0, 0, days)
	t.record = record.Record{Date: t.DateKey()}
	t.Load()
}

// Load fetches the displayed day's record. A failed fetch shows an empty
// record for the day.
func (t *Tracker) Load() {
	date := t.DateKey()
	t.loading = true
	go func() {
		rec, err := t.backend.Get(t.ctx, date)
		t.Post(func() {
			if date != t.DateKey() {
				return
			}
			t.loading = false
			if err != nil {
				t.logger.Error("fetch record", "date", date, "err", err)
				t.lastErr = err
				rec = record.Record{}
			} else {
				t.lastErr = nil
			}
			rec.Date = date
			t.record = rec
			t.CheckCelebration()
		})
	}()
}

// Toggle flips a boolean field.
func (t *Tracker) Toggle(field string) {
	t.Set(field, !t.record.Bool(field))
}

// Set applies a field change locally and persists it in the background.
// A failed save is logged and the local change is kept. Changes made while
// the day is still loading are dropped.
func (t *Tracker) Set(field string, value any) {
	if t.loading {
		t.logger.Debug("change ignored while loading", "date", t.DateKey(), "field", field)
		return
	}
	if err := t.record.Set(field, value); err != nil {
		t.logger.Error("apply field", "field", field, "err", err)
		return
	}
	t.CheckCelebration()

	date := t.DateKey()
	go func() {
		if _, err := t.backend.Update(t.ctx, date, field, value); err != nil {
			t.logger.Error("save field", "date", date, "field", field, "err", err)
		}
	}()
}

// Analyze saves the journal text, asks the backend for feedback and stores
// the result on the record. Empty text or an analysis already in flight is
// ignored.
func (t *Tracker) Analyze(text string) {
	if text == "" || t.analyzing {
		return
	}
	t.analyzing = true
	if err := t.record.Set("daily_journal", text); err != nil {
		t.logger.Error("apply journal", "err", err)
	}

	date := t.DateKey()
	go func() {
		if _, err := t.backend.Update(t.ctx, date, "daily_journal", text); err != nil {
			t.logger.Error("save journal", "date", date, "err", err)
		}

		s, err := t.backend.AnalyzeSentiment(t.ctx, text)
		if err != nil {
			t.logger.Error("analyze journal", "date", date, "err", err)
			t.Post(func() {
				t.analyzing = false
				t.lastErr = err
			})
			return
		}

		for _, u := range []struct {
			field string
			value any
		}{
			{"sentiment_score", s.Score},
			{"ai_encouraging_message", s.Message},
		} {
			if _, err := t.backend.Update(t.ctx, date, u.field, u.value); err != nil {
				t.logger.Error("save analysis", "date", date, "field", u.field, "err", err)
			}
		}

		t.Post(func() {
			t.analyzing = false
			if date != t.DateKey() {
				return
			}
			t.record.Set("sentiment_score", s.Score)
			t.record.Set("ai_encouraging_message", s.Message)
		})
	}()
}

// LoadStats fetches the recent records and summarizes them.
func (t *Tracker) LoadStats() {
	go func() {
		recs, err := t.backend.List(t.ctx, 0, config.StatsWindowDays)
		t.Post(func() {
			if err != nil {
				t.logger.Error("load stats", "err", err)
				t.lastErr = err
				return
			}
			s := record.Summarize(recs)
			t.stats = &s
		})
	}()
}

// CheckCelebration asks the checker about the displayed record's Sunnah
// flags.
func (t *Tracker) CheckCelebration() {
	if t.checker == nil {
		return
	}
	if _, err := t.checker.Check(t.ctx, t.SunnahFlags()); err != nil {
		t.logger.Error("check celebration", "err", err)
	}
}
