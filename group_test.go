package armature

import "testing"

func TestApplyTranslateToGroup(t *testing.T) {
	a := testObject("a")
	b := testObject("b")
	SetPosition(b, 1, 1, 1)

	Apply([]*Object{a, b}, Translate(0, 0, 0.5))

	assertVec3(t, "a", a.Position, Vec3{0, 0, 0.5})
	assertVec3(t, "b", b.Position, Vec3{1, 1, 1.5})
}

func TestApplyOrbitPivotsOnGlobalAxis(t *testing.T) {
	// A sits on the axis, B is offset: rotating the group about global Z
	// pivots B around A's position while A stays put.
	a := testObject("a")
	b := testObject("b")
	SetPosition(a, 0, 0, 0)
	SetPosition(b, 1, 0, 0)

	Apply([]*Object{a, b}, OrbitAxis(90, AxisZ))

	assertVec3(t, "a stays at origin", a.Position, Vec3{0, 0, 0})
	assertVec3(t, "b orbits", b.Position, Vec3{0, 1, 0})
	assertNear(t, "a z angle", a.Rotation.Z, Radians(90))
	assertNear(t, "b z angle", b.Rotation.Z, Radians(90))
}

func TestApplyRotateSpinsInPlace(t *testing.T) {
	b := testObject("b")
	SetPosition(b, 1, 0, 0)

	Apply([]*Object{b}, Rotate(0, 0, 90))

	assertVec3(t, "position unchanged", b.Position, Vec3{1, 0, 0})
	assertNear(t, "z angle", b.Rotation.Z, Radians(90))
}

func TestApplyAbsoluteActions(t *testing.T) {
	obj := testObject("part")
	Apply([]*Object{obj}, SetLocation(1, 2, 3))
	Apply([]*Object{obj}, Scale(-1, 2, -3))

	// Absolute actions are idempotent.
	Apply([]*Object{obj}, SetLocation(1, 2, 3))
	Apply([]*Object{obj}, Scale(-1, 2, -3))

	assertVec3(t, "position", obj.Position, Vec3{1, 2, 3})
	assertVec3(t, "scale", obj.Scale, Vec3{-1, 2, -3})
}

func TestApplySkipsNilEntries(t *testing.T) {
	obj := testObject("part")
	Apply([]*Object{nil, obj, nil}, Translate(1, 0, 0))
	assertVec3(t, "position", obj.Position, Vec3{1, 0, 0})
}

func TestApplyPreservesListOrder(t *testing.T) {
	// Relative ops commute per object, so order is only observable through
	// shared state; verify via repeated application to the same handle.
	obj := testObject("part")
	Apply([]*Object{obj, obj}, Translate(0, 0, 1))
	assertVec3(t, "applied twice", obj.Position, Vec3{0, 0, 2})
}
