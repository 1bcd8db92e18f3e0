package armature

import (
	"math"
	"testing"
)

func testObject(name string) *Object {
	return newObject(name, NewShapeData(name))
}

// --- Absolute sets ---

func TestSetPositionIdempotent(t *testing.T) {
	obj := testObject("part")
	SetPosition(obj, 1.5, -2, 0.25)
	first := obj.Position
	SetPosition(obj, 1.5, -2, 0.25)
	assertVec3(t, "position", obj.Position, first)
}

func TestSetScaleIdempotent(t *testing.T) {
	obj := testObject("part")
	SetScale(obj, 0.5, 0.5, 0.5)
	first := obj.Scale
	SetScale(obj, 0.5, 0.5, 0.5)
	assertVec3(t, "scale", obj.Scale, first)
}

func TestSetScaleAllowsMirroring(t *testing.T) {
	obj := testObject("part")
	SetScale(obj, -0.026674, -0.026674, -0.026674)
	assertVec3(t, "mirrored scale", obj.Scale, Vec3{-0.026674, -0.026674, -0.026674})
}

// --- Relative ops ---

func TestRotateByAccumulates(t *testing.T) {
	a := testObject("a")
	RotateBy(a, 0, 0, 30)
	RotateBy(a, 0, 0, 15)

	b := testObject("b")
	RotateBy(b, 0, 0, 45)

	assertVec3(t, "split vs single rotation", a.Rotation, b.Rotation)
	assertNear(t, "z angle", a.Rotation.Z, Radians(45))
}

func TestRotateByLeavesPositionUnchanged(t *testing.T) {
	obj := testObject("part")
	SetPosition(obj, 1, 0, 0)
	RotateBy(obj, 0, 0, 90)
	assertVec3(t, "position", obj.Position, Vec3{1, 0, 0})
}

func TestTranslateByAccumulates(t *testing.T) {
	obj := testObject("part")
	TranslateBy(obj, 1, 0, 0.5)
	TranslateBy(obj, 1, 0, 0.5)
	assertVec3(t, "position", obj.Position, Vec3{2, 0, 1})
}

// --- Orbital rotation ---

func TestRotateAboutAxisOrbitsPosition(t *testing.T) {
	obj := testObject("part")
	SetPosition(obj, 1, 0, 0)
	RotateAboutAxis(obj, 90, AxisZ)
	assertVec3(t, "orbited position", obj.Position, Vec3{0, 1, 0})
	assertNear(t, "accumulated z angle", obj.Rotation.Z, math.Pi/2)
}

func TestRotateAboutAxisDiffersFromRotateBy(t *testing.T) {
	orbital := testObject("orbital")
	local := testObject("local")
	SetPosition(orbital, 1, 0, 0)
	SetPosition(local, 1, 0, 0)

	RotateAboutAxis(orbital, 90, AxisZ)
	RotateBy(local, 0, 0, 90)

	// Same orientation change, different position: the orbital part swept
	// around the global axis, the local one spun in place.
	assertNear(t, "orbital z angle", orbital.Rotation.Z, local.Rotation.Z)
	assertVec3(t, "local position", local.Position, Vec3{1, 0, 0})
	assertVec3(t, "orbital position", orbital.Position, Vec3{0, 1, 0})
}

func TestRotateAboutAxisOnAxisPartStaysPut(t *testing.T) {
	obj := testObject("part")
	SetPosition(obj, 0, 0, 2)
	RotateAboutAxis(obj, 137, AxisZ)
	assertVec3(t, "on-axis position", obj.Position, Vec3{0, 0, 2})
}

// --- Nil tolerance ---

func TestPrimitivesTolerateNilObject(t *testing.T) {
	// Must not panic.
	SetPosition(nil, 1, 2, 3)
	SetScale(nil, 1, 1, 1)
	RotateBy(nil, 10, 0, 0)
	TranslateBy(nil, 0, 1, 0)
	RotateAboutAxis(nil, 45, AxisY)
}
