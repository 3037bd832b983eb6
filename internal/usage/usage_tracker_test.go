package usage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_TrackAggregates(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("gemini-3-pro-preview", 10, 5)
	tracker.Track("gemini-3-pro-preview", 2, 3)
	tracker.Track("gemini-flash", 1, 1)

	stats := tracker.Stats()
	assert.Equal(t, 3, stats.Requests)
	assert.Equal(t, TokenCounts{Input: 13, Output: 9, Total: 22}, stats.Total)
	assert.Equal(t, int64(20), stats.ByModel["gemini-3-pro-preview"].Total)
	assert.Equal(t, int64(2), stats.ByModel["gemini-flash"].Total)
}

func TestTracker_StatsIsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("m", 1, 1)

	stats := tracker.Stats()
	stats.ByModel["m"] = TokenCounts{Total: 999}

	assert.Equal(t, int64(2), tracker.Stats().ByModel["m"].Total)
}

func TestTracker_Summary(t *testing.T) {
	tracker := NewTracker()
	assert.Empty(t, tracker.Summary())

	tracker.Track("m", 800, 100)
	assert.Equal(t, "900 tokens", tracker.Summary())

	tracker.Track("m", 1000, 300)
	assert.Equal(t, "2.2k tokens", tracker.Summary())

	tracker.Track("m", 2_000_000, 0)
	assert.Equal(t, "2.0M tokens", tracker.Summary())
}

func TestTracker_ConcurrentTrack(t *testing.T) {
	tracker := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Track("m", 1, 1)
		}()
	}
	wg.Wait()

	stats := tracker.Stats()
	assert.Equal(t, 50, stats.Requests)
	assert.Equal(t, int64(100), stats.Total.Total)
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	tracker := NewTracker()
	ctx := NewContext(context.Background(), tracker)
	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Same(t, tracker, got)
}
