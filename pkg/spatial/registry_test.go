package spatial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndCount(t *testing.T) {
	r := NewRegistry()
	r.Register("w1", 0, 0, "worker")
	r.Register("f1", 5, 5, "forklift")
	assert.Equal(t, 2, r.Count())

	r.Unregister("w1")
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_NearestForklift(t *testing.T) {
	r := NewRegistry()
	r.Register("w1", 1, 1, "worker")
	r.Register("f-far", 6, 0, "forklift")
	r.Register("f-near", 2, 0, "forklift")

	e := r.NearestForklift(0, 0, 10)
	require.NotNil(t, e)
	assert.Equal(t, "f-near", e.ID)
}

func TestRegistry_NearestForkliftIgnoresWorkers(t *testing.T) {
	r := NewRegistry()
	r.Register("w1", 0.5, 0, "worker")
	assert.Nil(t, r.NearestForklift(0, 0, 10))
}

func TestRegistry_NearestForkliftRespectsRange(t *testing.T) {
	r := NewRegistry()
	r.Register("f1", 20, 0, "forklift")
	assert.Nil(t, r.NearestForklift(0, 0, 8))
	assert.NotNil(t, r.NearestForklift(0, 0, 25))
}

func TestRegistry_NearestForkliftReturnsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register("f1", 2, 0, "forklift")

	e := r.NearestForklift(0, 0, 10)
	require.NotNil(t, e)
	e.X = 999

	again := r.NearestForklift(0, 0, 10)
	require.NotNil(t, again)
	assert.Equal(t, 2.0, again.X, "caller mutation reached the registry")
}

func TestRegistry_HeadingEstimatedFromUpserts(t *testing.T) {
	r := NewRegistry()
	r.Register("f1", 0, 0, "forklift")

	// Move steadily along +x over a few frames.
	for i := 1; i <= 5; i++ {
		time.Sleep(10 * time.Millisecond)
		r.Register("f1", float64(i)*0.5, 0, "forklift")
	}

	e := r.NearestForklift(0, 0, 100)
	require.NotNil(t, e)
	assert.Greater(t, e.Speed, 0.2)
	assert.InDelta(t, 1.0, e.HeadingX, 0.05)
	assert.InDelta(t, 0.0, e.HeadingZ, 0.05)
}

func TestForkliftApproaching(t *testing.T) {
	r := NewRegistry()

	toward := &Entity{X: -5, Z: 0, HeadingX: 1, HeadingZ: 0, Speed: 2}
	assert.True(t, r.ForkliftApproaching(0, 0, toward))

	away := &Entity{X: -5, Z: 0, HeadingX: -1, HeadingZ: 0, Speed: 2}
	assert.False(t, r.ForkliftApproaching(0, 0, away))

	perpendicular := &Entity{X: -5, Z: 0, HeadingX: 0, HeadingZ: 1, Speed: 2}
	assert.False(t, r.ForkliftApproaching(0, 0, perpendicular))

	parked := &Entity{X: -5, Z: 0, HeadingX: 1, HeadingZ: 0, Speed: 0}
	assert.False(t, r.ForkliftApproaching(0, 0, parked))

	assert.False(t, r.ForkliftApproaching(0, 0, nil))
}

func TestRegistry_EntitiesByCategory(t *testing.T) {
	r := NewRegistry()
	r.Register("w1", 0, 0, "worker")
	r.Register("w2", 1, 0, "worker")
	r.Register("f1", 2, 0, "forklift")

	assert.Len(t, r.Entities("worker"), 2)
	assert.Len(t, r.Entities("forklift"), 1)
	assert.Len(t, r.Entities(""), 3)
}
