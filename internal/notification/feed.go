// Package notification holds the session's in-memory notification feed.
// Append-only and newest-first; history is lost when the process exits.
package notification

import (
	"strconv"
	"sync"
	"time"

	"github.com/Afresh-Revolution/Knowrist/internal/metrics"
)

type Type string

const (
	TypeActivation Type = "activation"
	TypeWelcome    Type = "welcome"
	TypePoolFull   Type = "pool-full"
	TypeOther      Type = "other"
)

type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Code        string `json:"code,omitempty"`
	Type        Type   `json:"type"`
}

type Feed struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

func NewFeed(seed ...Notification) *Feed {
	f := &Feed{now: time.Now}
	f.items = append(f.items, seed...)
	return f
}

// SeedWelcome returns the canned entries every fresh session starts with.
func SeedWelcome() []Notification {
	return []Notification{
		{
			ID:          "1",
			Title:       "Welcome to Knowrist",
			Description: "Get ready to challenge your mind!",
			Timestamp:   "1 hour ago",
			Type:        TypeWelcome,
		},
	}
}

// Add prepends a notification, stamping its id from the current time and the
// "Just now" label. No deduplication and no capacity bound.
func (f *Feed) Add(title, description, code string, typ Type) Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := Notification{
		ID:          strconv.FormatInt(f.now().UnixMilli(), 10),
		Title:       title,
		Description: description,
		Timestamp:   "Just now",
		Code:        code,
		Type:        typ,
	}
	f.items = append([]Notification{n}, f.items...)
	metrics.NotificationsTotal.WithLabelValues(string(typ)).Inc()
	return n
}

func (f *Feed) Remove(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the feed newest-first.
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}
