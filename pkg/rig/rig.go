// Package rig provides the transform handles a worker agent animates.
// The engine owns these exclusively; the rendering layer reads them when
// drawing a frame and swaps in a different-detail set on LOD changes.
package rig

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Transform is a mutable position/rotation/scale handle for one rig part.
// Rotation is Euler radians: X pitch, Y yaw, Z roll.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() *Transform {
	return &Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// Detail holds the optional high-LOD-only parts. A medium or low rig
// leaves the whole struct nil rather than individual fields.
type Detail struct {
	LeftEyelid  *Transform
	RightEyelid *Transform
	Chest       *Transform
	Fingers     *Transform
}

// Bindings is the full set of handles for one worker rig.
// Root must be present; joint parts may be nil on reduced rigs and the
// engine skips whatever it cannot reach.
type Bindings struct {
	Root *Transform

	Pelvis *Transform
	Torso  *Transform
	Head   *Transform

	LeftHip   *Transform
	LeftKnee  *Transform
	RightHip  *Transform
	RightKnee *Transform

	LeftShoulder  *Transform
	RightShoulder *Transform

	Detail *Detail
}

// NewBindings returns a full-detail binding set with fresh transforms.
func NewBindings() *Bindings {
	return &Bindings{
		Root:          NewTransform(),
		Pelvis:        NewTransform(),
		Torso:         NewTransform(),
		Head:          NewTransform(),
		LeftHip:       NewTransform(),
		LeftKnee:      NewTransform(),
		RightHip:      NewTransform(),
		RightKnee:     NewTransform(),
		LeftShoulder:  NewTransform(),
		RightShoulder: NewTransform(),
		Detail: &Detail{
			LeftEyelid:  NewTransform(),
			RightEyelid: NewTransform(),
			Chest:       NewTransform(),
			Fingers:     NewTransform(),
		},
	}
}

// Ready reports whether the rig can be animated at all.
func (b *Bindings) Ready() bool {
	return b != nil && b.Root != nil
}

// HasDetail reports whether the optional high-LOD parts are mounted.
func (b *Bindings) HasDetail() bool {
	return b != nil && b.Detail != nil
}
