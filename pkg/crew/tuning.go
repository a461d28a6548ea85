package crew

// Tuning constants. Distances are world units, times are seconds,
// angles are radians.
const (
	// One frame of simulation never advances more than this, so a
	// stalled tab cannot make workers teleport.
	maxFrameDelta = 0.1

	// Half-length of the walkable lane on the z axis. Workers bounce,
	// they do not pathfind.
	worldBound = 25.0

	// How long a state-transition blend takes to reach 1.
	stateTransitionTime = 0.3

	// P1 evacuation.
	evacuationSpeed  = 6.0
	evacuationArrive = 1.5

	// P2 forklift evasion.
	forkliftRange          = 8.0
	startleRadius          = 3.0
	forkliftCheckFrequency = 10
	evasionDistance        = 2.5
	evasionSpeed           = 3.0
	evasionCooldown        = 2.0
	evasionCadence         = 0.6
	headTargetDecay        = 0.9

	// Post-evasion wave.
	waveChance   = 0.3
	waveDuration = 1.5
	waveRate     = 10.0
	waveBase     = -2.2
	waveAmp      = 0.5

	// P3 locomotion.
	idleDwellMin     = 8.0
	idleDwellMax     = 20.0
	interruptIdleMin = 2.0
	interruptIdleMax = 6.0
	// Hazard rate for the walking->idle interruption. Chosen so a
	// 60fps driver sees roughly the original 0.1%-per-frame odds.
	walkInterruptHazard = 0.06
	breathingAdvance    = 0.35
	bobAmplitude        = 0.05
	runFactor           = 1.5

	// Tier-2 / tier-3 ambient features.
	variationMin     = 3.0
	variationMax     = 7.0
	blinkMin         = 2.0
	blinkMax         = 6.0
	blinkDuration    = 0.15
	maxFatigue       = 0.8
	fatigueFullShift = 3600.0 // 60 simulated minutes to reach maxFatigue
	fatigueRecovery  = 4.0    // break recovery, multiple of the accrual rate

	// LOD.
	lodUpdateFrequency = 15
	defaultLODDistance = 25.0

	// Pose damping time constants.
	walkTimeConstant = 0.2
	runTimeConstant  = 0.12
)

// cadence returns the walk-cycle advance rate in radians per second for
// a given walking speed.
func cadence(speed float64) float64 {
	return 1.6 + 0.4*speed
}
