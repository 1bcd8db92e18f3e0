package armature

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PoseTween animates up to 3 float64 pose components on an Object
// simultaneously. It is a convenience for ad-hoc motion outside the recorded
// timeline — camera fly-ins, staging moves while authoring — and never
// touches the keyframe tracks. Create one via TweenPosition, TweenRotation,
// or TweenScale and call Update(dt) each frame.
type PoseTween struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	count  int
	Done   bool
}

// Update advances all component tweens by dt seconds and writes the values
// to the target pose fields.
func (g *PoseTween) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func newVec3Tween(field *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *PoseTween {
	g := &PoseTween{count: 3}
	g.tweens[0] = gween.New(float32(field.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(field.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(field.Z), float32(to.Z), duration, fn)
	g.fields[0] = &field.X
	g.fields[1] = &field.Y
	g.fields[2] = &field.Z
	return g
}

// TweenPosition creates a PoseTween that animates obj.Position to the given
// target over the specified duration using the easing function.
func TweenPosition(obj *Object, to Vec3, duration float32, fn ease.TweenFunc) *PoseTween {
	return newVec3Tween(&obj.Position, to, duration, fn)
}

// TweenRotation creates a PoseTween that animates obj.Rotation (radians) to
// the given target over the specified duration using the easing function.
func TweenRotation(obj *Object, to Vec3, duration float32, fn ease.TweenFunc) *PoseTween {
	return newVec3Tween(&obj.Rotation, to, duration, fn)
}

// TweenScale creates a PoseTween that animates obj.Scale to the given target
// over the specified duration using the easing function.
func TweenScale(obj *Object, to Vec3, duration float32, fn ease.TweenFunc) *PoseTween {
	return newVec3Tween(&obj.Scale, to, duration, fn)
}
