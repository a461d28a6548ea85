// Package throttle provides the frame subsampling schedule used to
// bound per-frame cost. A throttle level of N means "run every Nth
// frame": level 1 is full rate, level 2 half rate, and so on. Each
// consumer owns its own Counter; there is no process-wide frame number.
package throttle

// Levels per render quality. At a 60fps driver these map to 60/30/20/15
// effective updates per second.
const (
	LevelFull    = 1
	LevelHalf    = 2
	LevelThird   = 3
	LevelQuarter = 4
)

// LevelForQuality maps a render quality name to a throttle level.
// Unknown qualities run at full rate.
func LevelForQuality(quality string) int {
	switch quality {
	case "low":
		return LevelQuarter
	case "medium":
		return LevelHalf
	case "high", "ultra":
		return LevelFull
	}
	return LevelFull
}

// Counter tracks a global frame number for one simulation instance.
type Counter struct {
	frame uint64
}

// ShouldRunThisFrame reports whether work at the given throttle level
// is due on the current frame. Level values below 1 are treated as 1.
func (c *Counter) ShouldRunThisFrame(level int) bool {
	if level <= 1 {
		return true
	}
	return c.frame%uint64(level) == 0
}

// IncrementGlobalFrame advances the frame number. The driver calls this
// exactly once per rendered frame, whether or not work ran.
func (c *Counter) IncrementGlobalFrame() {
	c.frame++
}

// Frame returns the current frame number.
func (c *Counter) Frame() uint64 {
	return c.frame
}
