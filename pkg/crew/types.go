// Package crew is the behavioral and animation engine for the simulated
// warehouse workers. Once per rendered frame the Manager decides a
// priority-ordered behavior for every registered worker (evacuation over
// forklift evasion over ambient locomotion), advances a continuous
// skeletal pose through damped targets, and maintains a hysteresis-based
// LOD tier per worker so rendering cost stays bounded as the population
// grows.
package crew

import "github.com/nellwatson/go-floorcrew/pkg/rig"

// State is a behavior state of the locomotion machine.
type State string

const (
	StateIdle    State = "idle"
	StateWalking State = "walking"
	StateRunning State = "running"
	StateSitting State = "sitting"
)

// Status is the externally driven work status. The production layer
// sets it; this engine reads it but never infers it.
type Status string

const (
	StatusWorking    Status = "working"
	StatusBreak      Status = "break"
	StatusResponding Status = "responding"
	StatusIdle       Status = "idle"
)

// LOD is a detail tier chosen by camera distance.
type LOD int

const (
	LODHigh LOD = iota
	LODMedium
	LODLow
)

// String returns the tier name.
func (l LOD) String() string {
	switch l {
	case LODHigh:
		return "high"
	case LODMedium:
		return "medium"
	case LODLow:
		return "low"
	}
	return "unknown"
}

// idleVariation is the current idle micro-variation.
type idleVariation int

const (
	variationBreathing idleVariation = iota
	variationLooking
	variationShifting
)

// Config describes one worker at registration time.
type Config struct {
	ID        string
	Position  rig.Vec3
	Speed     float64 // walking speed, world units per second
	Direction float64 // +1 or -1 along the walking axis
	Role      string
	Status    Status
}

// Exit is a resolved evacuation target, owned by the exit/zone layer.
type Exit struct {
	ID    string
	X, Z  float64
	Label string
}

// Settings is pushed by the host driver every frame. The two callbacks
// belong to the exit/zone layer; this engine only calls them. Either
// may be nil before the collaborator has wired itself up, in which case
// evacuation logic skips without faulting.
type Settings struct {
	TabVisible       bool
	Quality          string
	LODDistance      float64
	EvacuationActive bool

	NearestExit   func(x, z float64) *Exit
	MarkEvacuated func(id string)
}

// Snapshot is a copyable view of one worker for observers (dashboard,
// logs). It carries no handles into live state.
type Snapshot struct {
	ID     string  `json:"id"`
	Role   string  `json:"role"`
	Status Status  `json:"status"`
	State  State   `json:"state"`
	LOD    string  `json:"lod"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Yaw    float64 `json:"yaw"`

	Fatigue      float64 `json:"fatigue"`
	IsEvading    bool    `json:"is_evading"`
	IsWaving     bool    `json:"is_waving"`
	HasEvacuated bool    `json:"has_evacuated"`
}

// Census is a cheap population summary for status endpoints.
type Census struct {
	Total     int `json:"total"`
	High      int `json:"high"`
	Medium    int `json:"medium"`
	Low       int `json:"low"`
	Evacuated int `json:"evacuated"`
	Evading   int `json:"evading"`
}
