package crew

import (
	"math"
	"math/rand"

	"github.com/nellwatson/go-floorcrew/pkg/gait"
	"github.com/nellwatson/go-floorcrew/pkg/rig"
)

// agent is the full per-worker state record. It is owned exclusively by
// the Manager; nothing outside this package touches it.
type agent struct {
	id   string
	role string

	// Externally driven, never inferred here.
	status Status

	// Kinematics. pos.Y is the standing base height; the vertical bob
	// is applied to the bound root only, never accumulated into pos.
	pos       rig.Vec3
	yaw       float64
	baseX     float64 // lane anchor the worker returns to after evading
	direction float64
	speed     float64

	// Behavior state machine.
	state           State
	prevState       State
	stateTransition float64 // blend from prevState to state, [0, 1]

	// Gait and timers.
	walkCycle      float64 // phase accumulator, wrapped mod 2*pi
	idleTimer      float64 // countdown of the current idle segment
	idleDuration   float64 // length the current idle segment was rolled at
	variation      idleVariation
	variationTimer float64
	blinkTimer     float64
	blinkPhase     float64 // > 0 while a blink envelope is playing
	fatigue        float64 // [0, maxFatigue]
	shiftTime      float64 // simulated seconds since this worker clocked in

	// Attention: head yaw offset low-passed toward zero without a threat.
	headTarget float64

	// Evasion episode.
	isEvading      bool
	wasEvading     bool
	evadeDirection float64 // +1 or -1, locked for the whole episode
	evadeCooldown  float64
	isStartled     bool

	// Social flourish.
	isWaving  bool
	wavePhase float64
	waveTimer float64

	// Evacuation.
	hasEvacuated     bool
	evacuationTarget *Exit
	markedEvacuated  bool

	// LOD.
	lod              LOD
	distanceToCamera float64
	lodOffset        int // per-worker stagger so LOD checks spread across frames

	// Current damped pose and the bound rig.
	pose     gait.Pose
	bindings *rig.Bindings
}

// newAgent creates a worker with randomized phase and timers so a
// population does not animate in lock-step.
func newAgent(cfg Config, bindings *rig.Bindings, rng *rand.Rand) *agent {
	a := &agent{
		id:        cfg.ID,
		role:      cfg.Role,
		status:    cfg.Status,
		pos:       cfg.Position,
		baseX:     cfg.Position.X,
		direction: cfg.Direction,
		speed:     cfg.Speed,
		state:     StateIdle,
		prevState: StateIdle,

		walkCycle:      rng.Float64() * 2 * math.Pi,
		idleDuration:   idleDwellMin + rng.Float64()*(idleDwellMax-idleDwellMin),
		variation:      idleVariation(rng.Intn(3)),
		variationTimer: variationMin + rng.Float64()*(variationMax-variationMin),
		blinkTimer:     blinkMin + rng.Float64()*(blinkMax-blinkMin),

		stateTransition: 1,
		bindings:        bindings,
	}
	a.idleTimer = a.idleDuration
	if a.direction == 0 {
		a.direction = 1
	}
	a.yaw = facingYaw(a.direction)
	if bindings.Ready() {
		bindings.Root.Position = a.pos
		bindings.Root.Rotation.Y = a.yaw
	}
	return a
}

// setState switches the behavior state, restarting the transition blend.
func (a *agent) setState(s State) {
	if a.state == s {
		return
	}
	a.prevState = a.state
	a.state = s
	a.stateTransition = 0
}

// moving reports whether the current state translates the worker.
func (a *agent) moving() bool {
	return a.state == StateWalking || a.state == StateRunning
}

func facingYaw(direction float64) float64 {
	if direction < 0 {
		return math.Pi
	}
	return 0
}
