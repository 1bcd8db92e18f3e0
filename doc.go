// Package armature is an offline choreography engine for multi-part
// mechanical rigs: it assembles a named part hierarchy from duplication
// templates, applies ordered group transforms across discrete time marks,
// and records the resulting poses as keyframes that play back as a seamless
// loop.
//
// Armature is a deterministic timeline author, not a simulator. There is no
// kinematics solving, no collision, and no real-time control loop — a run
// either produces the complete keyframed assembly or aborts.
//
// # Quick start
//
// Place the rig's template objects in a [Stage], then build:
//
//	stage := armature.NewStage()
//	// ... create template objects ("PLATE", "ROTOR", ...) ...
//	parts, err := armature.BuildChoreography(stage, armature.DefaultChoreoConfig())
//
// The returned parts are fully posed and keyframed. Sample them back out
// with a [Playback], or let [Bootstrap] wire up the preview camera, light,
// and frame exporter in one call:
//
//	rig, err := armature.Bootstrap(stage, armature.DefaultConfig())
//	rig.Seek(150)          // pose the rig at timeline frame 150
//	err = rig.ExportFrames() // render the loop to numbered PNGs
//
// # Transform model
//
// A part's pose is an absolute position, successive per-axis euler angles,
// and an absolute (possibly negative, i.e. mirrored) scale. Relative
// operations accumulate: [RotateBy] adds to the existing axis angles,
// [TranslateBy] adds a world offset. [RotateAboutAxis] is the distinct
// orbital operation — it pivots a part about a world axis through the scene
// origin, so rotating a group of parts together produces orbital motion for
// the off-axis members. See [Apply] for group semantics.
//
// # Timeline
//
// The [Sequencer] walks the authored phases: assemble at the first mark,
// then per phase apply the group actions and record every part's position
// and rotation at the next mark. The reference phase set nets to zero, so
// the pose at the last mark equals the pose at the first and the animation
// loops without a seam. Interpolation between marks is playback policy,
// shaped by a [gween] ease function.
//
// [gween]: https://github.com/tanema/gween
package armature
