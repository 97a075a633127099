package pool

import (
	"context"
	"time"
)

// Ticker drives every pool countdown from one shared timer. One tick per
// second, no drift correction: a stalled process shows a lagging countdown
// rather than jumping to catch up.
type Ticker struct {
	store    *Store
	interval time.Duration
}

func NewTicker(store *Store) *Ticker {
	return &Ticker{store: store, interval: time.Second}
}

func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.store.Tick()
		}
	}
}
