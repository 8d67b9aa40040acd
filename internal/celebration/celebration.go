// Package celebration decides when the confetti burst is shown and owns the
// panel that hosts it.
package celebration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// KeyPrefix prefixes the ISO date in the durable per-day marker key.
const KeyPrefix = "jannah_celebrated_"

// Flags are the four Sunnah prayers that unlock the celebration.
type Flags struct {
	Fajr    bool
	Dhuhr   bool
	Maghrib bool
	Isha    bool
}

func (f Flags) All() bool {
	return f.Fajr && f.Dhuhr && f.Maghrib && f.Isha
}

// Store is the durable string key/value store used for per-day markers.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Key returns the marker key for day.
func Key(day time.Time) string {
	return KeyPrefix + day.UTC().Format(time.DateOnly)
}

// Celebration triggers the panel at most once per calendar day.
type Celebration struct {
	store  Store
	panel  *Panel
	now    func() time.Time
	logger *slog.Logger
}

// New creates a Celebration. panel may be nil, in which case the per-day
// marker is still recorded but nothing is shown.
func New(store Store, panel *Panel, logger *slog.Logger) *Celebration {
	return &Celebration{
		store:  store,
		panel:  panel,
		now:    time.Now,
		logger: logger,
	}
}

// Check shows the celebration if all four flags are set and it has not been
// shown today. It reports whether the celebration was triggered.
func (c *Celebration) Check(ctx context.Context, flags Flags) (bool, error) {
	if !flags.All() {
		return false, nil
	}

	now := c.now()
	key := Key(now)
	if _, seen, err := c.store.Get(ctx, key); err != nil {
		return false, fmt.Errorf("check celebration marker: %w", err)
	} else if seen {
		return false, nil
	}

	if c.panel != nil {
		c.panel.Show(now)
	}
	if err := c.store.Set(ctx, key, "true"); err != nil {
		return true, fmt.Errorf("record celebration marker: %w", err)
	}
	c.logger.Info("celebration triggered", "key", key)
	return true, nil
}

// Reset forgets today's marker so the next Check can celebrate again.
func (c *Celebration) Reset(ctx context.Context) error {
	key := Key(c.now())
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("reset celebration marker: %w", err)
	}
	c.logger.Info("celebration reset", "key", key)
	return nil
}

// Days returns the ISO dates that have been celebrated, oldest first.
func (c *Celebration) Days(ctx context.Context) ([]string, error) {
	keys, err := c.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list celebration markers: %w", err)
	}
	days := make([]string, 0, len(keys))
	for _, k := range keys {
		days = append(days, strings.TrimPrefix(k, KeyPrefix))
	}
	return days, nil
}
