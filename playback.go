package armature

import (
	"github.com/tanema/gween/ease"
)

// Playback samples recorded tracks back into live object poses, standing in
// for the host's playback of the authored timeline. The engine's contract
// ends at "value recorded"; the curve shape between marks is playback
// policy, selected here by an ease function (Linear matching the host
// default, any other ease.TweenFunc as the documented easing override).
//
// There is no global playback manager — callers drive Apply themselves,
// typically once per rendered frame.
type Playback struct {
	stage *Stage
	objs  []*Object
	fn    ease.TweenFunc

	first, last int
}

// NewPlayback creates a playback over the given objects' recorded tracks.
// The loop range spans the earliest and latest recorded mark across all
// tracks. The ease function shapes every interpolation segment; nil means
// ease.Linear.
func NewPlayback(stage *Stage, objs []*Object, fn ease.TweenFunc) *Playback {
	if fn == nil {
		fn = ease.Linear
	}
	p := &Playback{stage: stage, objs: objs, fn: fn, first: -1, last: -1}
	for _, obj := range objs {
		for _, ch := range []Channel{ChannelPosition, ChannelRotation} {
			track := stage.TrackFor(obj, ch)
			if track == nil || len(track.Keyframes) == 0 {
				continue
			}
			lo := track.Keyframes[0].Frame
			hi := track.Keyframes[len(track.Keyframes)-1].Frame
			if p.first < 0 || lo < p.first {
				p.first = lo
			}
			if hi > p.last {
				p.last = hi
			}
		}
	}
	return p
}

// First returns the earliest recorded mark, or -1 with no tracks.
func (p *Playback) First() int { return p.first }

// Last returns the latest recorded mark, or -1 with no tracks.
func (p *Playback) Last() int { return p.last }

// Duration returns the loop length in frames.
func (p *Playback) Duration() int {
	if p.last < 0 {
		return 0
	}
	return p.last - p.first
}

// wrap folds an arbitrary frame into the loop range.
func (p *Playback) wrap(frame float64) float64 {
	d := float64(p.Duration())
	if d <= 0 {
		return float64(p.first)
	}
	f := frame - float64(p.first)
	f -= d * float64(int(f/d))
	if f < 0 {
		f += d
	}
	return float64(p.first) + f
}

// Sample evaluates one track at frame. Before the first keyframe the first
// value holds, after the last the last value holds; between neighbors the
// ease function interpolates each component.
func (p *Playback) Sample(track *Track, frame float64) Vec3 {
	keys := track.Keyframes
	if len(keys) == 0 {
		return Vec3{}
	}
	if frame <= float64(keys[0].Frame) {
		return keys[0].Value
	}
	if frame >= float64(keys[len(keys)-1].Frame) {
		return keys[len(keys)-1].Value
	}
	i := 1
	for float64(keys[i].Frame) < frame {
		i++
	}
	a, b := keys[i-1], keys[i]
	t := float32(frame - float64(a.Frame))
	d := float32(b.Frame - a.Frame)
	return Vec3{
		X: float64(p.fn(t, float32(a.Value.X), float32(b.Value.X-a.Value.X), d)),
		Y: float64(p.fn(t, float32(a.Value.Y), float32(b.Value.Y-a.Value.Y), d)),
		Z: float64(p.fn(t, float32(a.Value.Z), float32(b.Value.Z-a.Value.Z), d)),
	}
}

// Apply samples every object's recorded channels at frame (wrapped into the
// loop range) and writes the values back to the live poses. Objects without
// a recorded track on a channel keep their current value there.
func (p *Playback) Apply(frame float64) {
	f := p.wrap(frame)
	for _, obj := range p.objs {
		if track := p.stage.TrackFor(obj, ChannelPosition); track != nil {
			obj.Position = p.Sample(track, f)
		}
		if track := p.stage.TrackFor(obj, ChannelRotation); track != nil {
			obj.Rotation = p.Sample(track, f)
		}
	}
}
