package throttle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForQuality(t *testing.T) {
	assert.Equal(t, LevelFull, LevelForQuality("ultra"))
	assert.Equal(t, LevelFull, LevelForQuality("high"))
	assert.Equal(t, LevelHalf, LevelForQuality("medium"))
	assert.Equal(t, LevelQuarter, LevelForQuality("low"))
	assert.Equal(t, LevelFull, LevelForQuality("garbage"))
}

func TestCounter_Schedule(t *testing.T) {
	counts := func(level, frames int) int {
		var c Counter
		n := 0
		for i := 0; i < frames; i++ {
			if c.ShouldRunThisFrame(level) {
				n++
			}
			c.IncrementGlobalFrame()
		}
		return n
	}

	assert.Equal(t, 60, counts(LevelFull, 60))
	assert.Equal(t, 30, counts(LevelHalf, 60))
	assert.Equal(t, 20, counts(LevelThird, 60))
	assert.Equal(t, 15, counts(LevelQuarter, 60))
}

func TestCounter_DegenerateLevels(t *testing.T) {
	var c Counter
	c.IncrementGlobalFrame()
	assert.True(t, c.ShouldRunThisFrame(0))
	assert.True(t, c.ShouldRunThisFrame(-3))
}

func TestCounter_Frame(t *testing.T) {
	var c Counter
	for i := 0; i < 5; i++ {
		c.IncrementGlobalFrame()
	}
	assert.Equal(t, uint64(5), c.Frame())
}
