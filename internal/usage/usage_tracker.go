// Package usage counts completion tokens for the running session.
// Counts live in memory only and are discarded on exit.
package usage

import (
	"context"
	"fmt"
	"sync"
)

type contextKey struct{}

// Tracker accumulates token usage reported by the completion service.
type Tracker struct {
	mu       sync.Mutex
	requests int
	total    TokenCounts
	byModel  map[string]TokenCounts
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{byModel: make(map[string]TokenCounts)}
}

// Track records one completed request.
func (t *Tracker) Track(model string, input, output int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	t.total.Add(input, output)

	entry := t.byModel[model]
	entry.Add(input, output)
	t.byModel[model] = entry
}

// Stats returns a copy of the counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	byModel := make(map[string]TokenCounts, len(t.byModel))
	for k, v := range t.byModel {
		byModel[k] = v
	}
	return Stats{Requests: t.requests, Total: t.total, ByModel: byModel}
}

// Summary renders the total for a status line, e.g. "1.2k tokens".
// It is empty until the first request is tracked.
func (t *Tracker) Summary() string {
	st := t.Stats()
	if st.Requests == 0 {
		return ""
	}
	return humanize(st.Total.Total) + " tokens"
}

func humanize(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Context Helpers

// NewContext returns a new context carrying the tracker.
func NewContext(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext retrieves the tracker from the context, or nil.
func FromContext(ctx context.Context) *Tracker {
	t, _ := ctx.Value(contextKey{}).(*Tracker)
	return t
}
