package armature

import (
	"fmt"
	"log"
)

// partSpec is one authored part: which template it is duplicated from and
// the rest pose it is placed at during assembly. Rotation is additive
// degrees on top of the template pose; negative scale components mirror the
// part. Linkage parts ride the orbital arm motion; joint parts additionally
// flex about their own X axis each phase.
type partSpec struct {
	template string
	name     string
	position Vec3
	rotation Vec3 // degrees, applied via RotateBy
	scale    Vec3
	linkage  bool
	joint    bool
}

// armRig is the reference arm rig: a fixed base plate plus a 13-part moving
// linkage, listed base-first in assembly order.
var armRig = []partSpec{
	{"PLATE", "plate", Vec3{-1.90249, -0.935105, 0.490659}, Vec3{0, 0, 0}, Vec3{0.029202, 0.029202, 0.029202}, false, false},
	{"ROTOR", "rotor", Vec3{-0.067378, 1.27627, 1.14376}, Vec3{0, 0, 45}, Vec3{-0.026674, -0.026674, -0.026674}, true, false},
	{"ROTATIONAXIS", "rotationaxis", Vec3{-0.082457, 1.26177, 1.03893}, Vec3{0, 0, 0}, Vec3{-0.079003, -0.094633, 0.028991}, true, false},
	{"CUBE.002", "cube2", Vec3{0.076949, 0.940057, 1.69695}, Vec3{180, 0, 0}, Vec3{-0.020435, -0.044361, 0.043016}, true, false},
	{"ANGLE.002", "angle2", Vec3{-0.358202, 0.926703, 1.91278}, Vec3{223.887, 0, 180}, Vec3{0.022659, 0.022659, 0.022659}, true, false},
	{"SHAFT", "shaft", Vec3{-0.092524, 0.446057, 2.11501}, Vec3{35.8352, 40, 313.85}, Vec3{0.02375, 0.02375, 0.02375}, true, true},
	{"ANGLE", "angle", Vec3{-0.358202, -0.029123, 2.42568}, Vec3{40.158, 0, 180}, Vec3{0.022659, 0.022659, 0.022659}, true, true},
	{"CUBE", "cube", Vec3{0.076949, -0.450501, 2.66975}, Vec3{-137.333, 0, 0}, Vec3{-0.020394, -0.043908, -0.020394}, true, true},
	{"SHAFT.001", "shaft001", Vec3{-0.092524, 0.164382, 3.42365}, Vec3{-33.431, -33.431, 323.4}, Vec3{0.02375, 0.02375, 0.02375}, true, true},
	{"CUBE.001", "cube001", Vec3{0.076949, 0.550098, 3.63451}, Vec3{-137.333, 0, 0}, Vec3{-0.020394, -0.043908, -0.020394}, true, true},
	{"ANGLE.001", "angle001", Vec3{-0.358202, 1.05752, 3.47314}, Vec3{40.1576, 0, -180}, Vec3{0.022659, 0.022659, 0.022659}, true, true},
	{"ROTOR.001", "rotor001", Vec3{-0.072524, 1.56643, 3.17345}, Vec3{-145.664, -29.1768, 35.5155}, Vec3{-0.019042, -0.019042, -0.019042}, true, true},
	{"GRIPPER", "gripper", Vec3{-0.355968, 1.53367, 3.2287}, Vec3{214.081, 0, 0}, Vec3{0.021216, 0.021216, 0.021216}, true, true},
	{"GRIPPER.001", "gripper001", Vec3{0.215339, 1.59303, 3.16052}, Vec3{-38.9312, 0, 180}, Vec3{0.021216, 0.021216, 0.021216}, true, true},
}

// Phase is one choreography transition: the group actions applied between
// two time marks. Lift translates the entire assembly vertically, Orbit
// swings the linkage about the global Z axis, Flex bends the joint subset
// about each part's own X axis. Angles are degrees.
//
// The reference phase set nets out to zero on every column, so after the
// last phase each part is back at its rest pose and the animation loops
// seamlessly. Vertical-only lifts are what make that closure exact: a Z
// translation commutes with a Z orbit, so the cycle closes as long as each
// column sums to zero.
type Phase struct {
	Lift  float64
	Orbit float64
	Flex  float64
}

// referencePhases is the authored four-transition motion cycle.
var referencePhases = []Phase{
	{Lift: 0.4, Orbit: -11, Flex: 8},
	{Lift: 0.15, Orbit: -24, Flex: 6},
	{Lift: -0.25, Orbit: 17, Flex: -9},
	{Lift: -0.3, Orbit: 18, Flex: -5},
}

// ChoreoConfig configures a choreography run. The zero value is not usable;
// start from DefaultChoreoConfig.
type ChoreoConfig struct {
	// Collection is the stage collection every duplicated part is linked
	// into.
	Collection string

	// Marks are the timeline frames snapshots are recorded at. Must be
	// strictly increasing and have exactly one more entry than Phases.
	Marks []int

	// Phases are the transitions between consecutive marks.
	Phases []Phase

	// Lenient restores the reference behavior of skipping parts whose
	// template is missing instead of aborting. A skipped part leaves a
	// hole the transform primitives tolerate, but the resulting
	// animation silently diverges from its design; leave this off
	// unless deliberately authoring against a partial rig.
	Lenient bool
}

// DefaultChoreoConfig returns the reference configuration: marks 1 through
// 400 in steps of 100, the authored four-phase cycle, strict templates.
func DefaultChoreoConfig() ChoreoConfig {
	return ChoreoConfig{
		Collection: "Collection",
		Marks:      []int{1, 100, 200, 300, 400},
		Phases:     referencePhases,
	}
}

// AssemblyContext carries the live state of one choreography run. Every
// component call receives it explicitly; there is no package-level rig
// state. Part handles are resolved once, at assembly, and threaded by
// reference afterwards — names are kept for diagnostics only.
type AssemblyContext struct {
	Registry *Registry
	Recorder *Recorder

	// Parts is every assembled part in assembly order, base first.
	Parts []*Object

	// Linkage is the moving subset: every part except the fixed base.
	Linkage []*Object

	// Joints is the linkage subset that flexes about its own X axis.
	Joints []*Object
}

// Sequencer drives a full choreography run: assemble the rig, step the
// phases, record the keyframe snapshots.
type Sequencer struct {
	cfg ChoreoConfig
	rig []partSpec
}

// NewSequencer creates a sequencer for the reference arm rig.
func NewSequencer(cfg ChoreoConfig) *Sequencer {
	return &Sequencer{cfg: cfg, rig: armRig}
}

// Run executes the whole choreography against the given stage and returns
// the assembled part list, fully posed and keyframed. On any error the run
// aborts before the failing phase records a keyframe: a half-keyframed
// assembly is worse than none.
func (q *Sequencer) Run(stage *Stage) ([]*Object, error) {
	if err := q.cfg.validate(); err != nil {
		return nil, err
	}

	ctx := &AssemblyContext{
		Registry: NewRegistry(stage),
		Recorder: NewRecorder(stage),
	}

	if err := q.assemble(ctx); err != nil {
		return nil, err
	}
	if err := ctx.Recorder.RecordFullPose(ctx.Parts, q.cfg.Marks[0]); err != nil {
		return nil, err
	}

	for i, phase := range q.cfg.Phases {
		q.step(ctx, phase)
		if err := ctx.Recorder.RecordFullPose(ctx.Parts, q.cfg.Marks[i+1]); err != nil {
			return nil, err
		}
	}
	return ctx.Parts, nil
}

func (c ChoreoConfig) validate() error {
	if len(c.Marks) != len(c.Phases)+1 {
		return fmt.Errorf("armature: %d marks for %d phases, want one more mark than phases",
			len(c.Marks), len(c.Phases))
	}
	for i := 1; i < len(c.Marks); i++ {
		if c.Marks[i] <= c.Marks[i-1] {
			return fmt.Errorf("armature: marks must be strictly increasing, got %v", c.Marks)
		}
	}
	return nil
}

// assemble duplicates every rig part from its template, places it at its
// rest pose, binds the parent chain, and discards the templates. A missing
// template aborts before anything is recorded unless the run is lenient.
func (q *Sequencer) assemble(ctx *AssemblyContext) error {
	var prev *Object
	for _, spec := range q.rig {
		obj, err := ctx.Registry.Duplicate(spec.template, spec.name, q.cfg.Collection)
		if err != nil {
			if q.cfg.Lenient {
				if _, ok := err.(*NotFoundError); ok {
					log.Printf("armature: skipping part %q: %v", spec.name, err)
					continue
				}
			}
			return err
		}

		SetPosition(obj, spec.position.X, spec.position.Y, spec.position.Z)
		RotateBy(obj, spec.rotation.X, spec.rotation.Y, spec.rotation.Z)
		SetScale(obj, spec.scale.X, spec.scale.Y, spec.scale.Z)

		if prev != nil {
			ctx.Registry.Bind(prev, obj)
		}
		prev = obj

		ctx.Parts = append(ctx.Parts, obj)
		if spec.linkage {
			ctx.Linkage = append(ctx.Linkage, obj)
		}
		if spec.joint {
			ctx.Joints = append(ctx.Joints, obj)
		}
	}

	templates := make([]string, len(q.rig))
	for i, spec := range q.rig {
		templates[i] = spec.template
	}
	ctx.Registry.DeleteByName(templates...)
	return nil
}

// step applies one phase's group actions in the authored order: lift the
// whole assembly, orbit the linkage, flex the joints. The order matters —
// rotation and translation do not commute, and the base and linkage run
// different action lists.
func (q *Sequencer) step(ctx *AssemblyContext, phase Phase) {
	Apply(ctx.Parts, Translate(0, 0, phase.Lift))
	Apply(ctx.Linkage, OrbitAxis(phase.Orbit, AxisZ))
	Apply(ctx.Joints, Rotate(phase.Flex, 0, 0))
}

// ReferenceTemplates returns the template object names the reference rig
// duplicates from, in assembly order. A host imports real geometry under
// these names before a run; tests and previews seed placeholder datablocks.
func ReferenceTemplates() []string {
	names := make([]string, len(armRig))
	for i, spec := range armRig {
		names[i] = spec.template
	}
	return names
}

// BuildChoreography assembles, poses, and keyframes the reference arm rig
// on the given stage and returns the final part list. This is the single
// outward entry point: callers hand the list to scene bootstrap for camera
// and lighting attachment and to the render pipeline for output.
func BuildChoreography(stage *Stage, cfg ChoreoConfig) ([]*Object, error) {
	return NewSequencer(cfg).Run(stage)
}
