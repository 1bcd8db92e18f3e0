package armature

// Action is one atomic group instruction: an operation plus its operand.
// Translate and Rotate(By) are relative and accumulate; Scale and
// SetLocation are absolute and idempotent; OrbitAxis pivots the whole group
// about one world axis through the scene origin.
type Action struct {
	Op     Op
	Vector Vec3    // operand for Translate, Rotate, Scale, SetLocation
	Angle  float64 // degrees, operand for OrbitAxis
	Axis   Axis    // axis for OrbitAxis
}

// Op identifies a group operation.
type Op uint8

const (
	OpTranslate   Op = iota // relative world-space offset (Vector)
	OpRotate                // relative per-axis euler degrees (Vector)
	OpScale                 // absolute scale (Vector)
	OpSetLocation           // absolute position (Vector)
	OpOrbitAxis             // global-axis rotation about origin (Angle, Axis)
)

// Translate returns an action adding (dx, dy, dz) to each target's position.
func Translate(dx, dy, dz float64) Action {
	return Action{Op: OpTranslate, Vector: Vec3{dx, dy, dz}}
}

// Rotate returns an action adding the given per-axis degrees to each
// target's own euler rotation, in place.
func Rotate(degX, degY, degZ float64) Action {
	return Action{Op: OpRotate, Vector: Vec3{degX, degY, degZ}}
}

// Scale returns an action setting each target's absolute scale.
func Scale(sx, sy, sz float64) Action {
	return Action{Op: OpScale, Vector: Vec3{sx, sy, sz}}
}

// SetLocation returns an action placing each target at an absolute position.
func SetLocation(x, y, z float64) Action {
	return Action{Op: OpSetLocation, Vector: Vec3{x, y, z}}
}

// OrbitAxis returns an action rotating each target by angleDeg about the
// given world axis through the scene origin.
func OrbitAxis(angleDeg float64, axis Axis) Action {
	return Action{Op: OpOrbitAxis, Angle: angleDeg, Axis: axis}
}

// Apply applies one action to every object in objs, in list order, as a
// single logical step. Nil entries are skipped the same way the primitives
// skip a nil object.
//
// For OpOrbitAxis every member pivots about the same world axis: the group
// is rotated as a set around the scene origin, so off-axis members orbit.
// This is deliberately different from OpRotate, which spins each member
// about its own axes without moving it.
func Apply(objs []*Object, action Action) {
	for _, obj := range objs {
		switch action.Op {
		case OpTranslate:
			TranslateBy(obj, action.Vector.X, action.Vector.Y, action.Vector.Z)
		case OpRotate:
			RotateBy(obj, action.Vector.X, action.Vector.Y, action.Vector.Z)
		case OpScale:
			SetScale(obj, action.Vector.X, action.Vector.Y, action.Vector.Z)
		case OpSetLocation:
			SetPosition(obj, action.Vector.X, action.Vector.Y, action.Vector.Z)
		case OpOrbitAxis:
			RotateAboutAxis(obj, action.Angle, action.Axis)
		}
	}
}
