package armature

import "math"

// Vec3 is a 3D vector used for positions, per-axis euler rotations, scales,
// and offsets throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the component-wise scaling of v by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// RotatedAbout returns v rotated by angle radians about the given world axis
// through the origin. This is the pivot math behind orbital group rotation:
// off-axis points sweep around the axis rather than spinning in place.
func (v Vec3) RotatedAbout(axis Axis, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	switch axis {
	case AxisX:
		return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
	case AxisY:
		return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
	default:
		return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
	}
}

// One is the unit scale vector.
var One = Vec3{1, 1, 1}

// Axis identifies one of the three world axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y", or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

// Channel names a keyframeable pose channel.
type Channel uint8

const (
	ChannelPosition Channel = iota // world-space location
	ChannelRotation                // per-axis euler angles, radians
)

// String returns the channel name used in diagnostics and config files.
func (c Channel) String() string {
	switch c {
	case ChannelPosition:
		return "position"
	case ChannelRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
