package armature

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera target point.
type scrollAnim struct {
	tweenY *gween.Tween
	tweenZ *gween.Tween
	doneY  bool
	doneZ  bool
}

// Camera is the orthographic preview camera the bootstrap attaches to a
// choreographed rig. It looks down the world X axis at a target point, so a
// part's world (Y, Z) maps to screen (horizontal, vertical). That is all a
// preview of an arm rig needs; perspective projection stays a host concern.
type Camera struct {
	// Target is the world-space point the view centers on.
	Target Vec3
	// Zoom is the world-to-pixel scale factor.
	Zoom float64
	// Width and Height are the output size in pixels.
	Width, Height int

	followTarget *Object
	followLerp   float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the origin with the given output
// size and a zoom chosen for roughly unit-scale rigs.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Zoom:   float64(height) / 6,
		Width:  width,
		Height: height,
	}
}

// Follow makes the camera track an object's position with the given lerp
// factor. A lerp of 1.0 snaps immediately; lower values smooth the motion.
func (c *Camera) Follow(obj *Object, lerp float64) {
	c.followTarget = obj
	c.followLerp = lerp
}

// Unfollow stops tracking the current target object.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera target to the given world point over
// duration seconds. Only the projected Y and Z components animate.
func (c *Camera) ScrollTo(target Vec3, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenY: gween.New(float32(c.Target.Y), float32(target.Y), duration, easeFn),
		tweenZ: gween.New(float32(c.Target.Z), float32(target.Z), duration, easeFn),
	}
}

// Update advances follow and scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		st := c.scrollTween
		if !st.doneY {
			v, done := st.tweenY.Update(dt)
			c.Target.Y = float64(v)
			st.doneY = done
		}
		if !st.doneZ {
			v, done := st.tweenZ.Update(dt)
			c.Target.Z = float64(v)
			st.doneZ = done
		}
		if st.doneY && st.doneZ {
			c.scrollTween = nil
		}
	}

	if c.followTarget != nil {
		lerp := c.followLerp
		if lerp <= 0 || lerp > 1 {
			lerp = 1
		}
		want := c.followTarget.Position
		c.Target.Y += (want.Y - c.Target.Y) * lerp
		c.Target.Z += (want.Z - c.Target.Z) * lerp
	}
}

// Project maps a world-space point to screen pixels. World Y runs right,
// world Z runs up (screen Y is flipped).
func (c *Camera) Project(p Vec3) (sx, sy float64) {
	sx = float64(c.Width)/2 + (p.Y-c.Target.Y)*c.Zoom
	sy = float64(c.Height)/2 - (p.Z-c.Target.Z)*c.Zoom
	return sx, sy
}

// MarkerRadius returns the screen radius to draw a part at, derived from
// its scale magnitude so mirrored (negative) scales render the same as
// their positive counterparts.
func (c *Camera) MarkerRadius(obj *Object) float64 {
	s := math.Max(math.Abs(obj.Scale.X), math.Max(math.Abs(obj.Scale.Y), math.Abs(obj.Scale.Z)))
	r := s * c.Zoom * 4
	if r < 2 {
		r = 2
	}
	return r
}
