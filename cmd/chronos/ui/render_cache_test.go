package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCache_GetOrCompute(t *testing.T) {
	rc := NewRenderCache(0)
	calls := 0
	render := func() string {
		calls++
		return "rendered"
	}

	key := TurnKey("01J", 80, false)
	assert.Equal(t, "rendered", rc.GetOrCompute(key, render))
	assert.Equal(t, "rendered", rc.GetOrCompute(key, render))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, rc.Len())

	rc.GetOrCompute(TurnKey("01J", 100, false), render)
	rc.GetOrCompute(TurnKey("01J", 80, true), render)
	assert.Equal(t, 3, calls, "width and theme are part of the key")

	rc.Clear()
	assert.Zero(t, rc.Len())
	rc.GetOrCompute(key, render)
	assert.Equal(t, 4, calls)
}
