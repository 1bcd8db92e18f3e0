package armature

// Transform primitives. All of them tolerate a nil object as a silent no-op
// rather than an error: optional duplication steps may fail upstream in
// lenient mode, and downstream pose code must not crash on the hole. Strict
// mode surfaces the missing object earlier, at assembly.

// SetPosition places obj at the absolute world position (x, y, z).
// Idempotent: setting the same position twice leaves the pose unchanged.
func SetPosition(obj *Object, x, y, z float64) {
	if obj == nil {
		return
	}
	obj.Position = Vec3{x, y, z}
}

// SetScale sets obj's absolute per-axis scale. Idempotent. Negative
// components mirror the part across that axis and are a deliberate
// authoring device, not a misconfiguration.
func SetScale(obj *Object, sx, sy, sz float64) {
	if obj == nil {
		return
	}
	obj.Scale = Vec3{sx, sy, sz}
}

// RotateBy adds the given angles, in degrees, to obj's current per-axis
// euler rotation. NOT idempotent: repeated calls accumulate. The part spins
// about its own axes in place; its position never changes.
func RotateBy(obj *Object, degX, degY, degZ float64) {
	if obj == nil {
		return
	}
	obj.Rotation.X += Radians(degX)
	obj.Rotation.Y += Radians(degY)
	obj.Rotation.Z += Radians(degZ)
}

// TranslateBy adds a world-space offset to obj's current position.
// NOT idempotent: repeated calls accumulate.
func TranslateBy(obj *Object, dx, dy, dz float64) {
	if obj == nil {
		return
	}
	obj.Position = obj.Position.Add(Vec3{dx, dy, dz})
}

// RotateAboutAxis rotates obj by angleDeg about the given world axis through
// the scene origin, then commits the result to the pose: the position orbits
// the axis and the matching euler angle accumulates by the same amount.
//
// This is a distinct operation from RotateBy, not a variant of it. RotateBy
// spins a part in place about its own axes; RotateAboutAxis pivots on the
// global axis, so an off-axis part sweeps through space. The sequencer uses
// both, and merging them changes the motion.
func RotateAboutAxis(obj *Object, angleDeg float64, axis Axis) {
	if obj == nil {
		return
	}
	angle := Radians(angleDeg)
	obj.Position = obj.Position.RotatedAbout(axis, angle)
	switch axis {
	case AxisX:
		obj.Rotation.X += angle
	case AxisY:
		obj.Rotation.Y += angle
	default:
		obj.Rotation.Z += angle
	}
}
