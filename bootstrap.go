package armature

import (
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config is the bootstrap-level configuration: everything around the
// choreography that the engine itself does not own — output geometry, frame
// rate, easing override, lighting. Loaded from YAML; zero fields fall back
// to defaults at Load time.
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	FPS       int    `yaml:"fps"`
	FrameStep int    `yaml:"frame_step"` // export every Nth timeline frame
	OutputDir string `yaml:"output_dir"`

	// Easing selects the interpolation curve used at playback between
	// recorded marks: "linear" (host default), "quad", "cubic", "sine".
	Easing string `yaml:"easing"`

	// Collection overrides the stage collection parts are linked into.
	Collection string `yaml:"collection"`

	// Marks overrides the recorded time marks.
	Marks []int `yaml:"marks"`

	// Lenient tolerates missing duplication templates (see ChoreoConfig).
	Lenient bool `yaml:"lenient"`

	// Light places the single preview light relative to the tracked part.
	Light LightConfig `yaml:"light"`
}

// LightConfig positions the preview light.
type LightConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	OffsetZ float64 `yaml:"offset_z"`
	Energy  float64 `yaml:"energy"`
}

// DefaultConfig returns the reference render settings.
func DefaultConfig() Config {
	return Config{
		Width:      960,
		Height:     720,
		FPS:        60,
		FrameStep:  1,
		OutputDir:  "frames",
		Easing:     "linear",
		Collection: "Collection",
		Light:      LightConfig{OffsetX: 2, OffsetY: -2, OffsetZ: 3, Energy: 1000},
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("armature: failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("armature: failed to parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.FrameStep <= 0 {
		c.FrameStep = d.FrameStep
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.Easing == "" {
		c.Easing = d.Easing
	}
	if c.Collection == "" {
		c.Collection = d.Collection
	}
	if c.Light.Energy <= 0 {
		c.Light = d.Light
	}
	return c
}

// EaseFunc resolves the configured easing name. Unknown names fall back to
// linear — the host default — rather than failing a render over a typo.
func (c Config) EaseFunc() ease.TweenFunc {
	switch c.Easing {
	case "quad":
		return ease.InOutQuad
	case "cubic":
		return ease.InOutCubic
	case "sine":
		return ease.InOutSine
	default:
		return ease.Linear
	}
}

// choreoConfig derives the engine-level config from the bootstrap config.
func (c Config) choreoConfig() ChoreoConfig {
	cc := DefaultChoreoConfig()
	cc.Collection = c.Collection
	cc.Lenient = c.Lenient
	if len(c.Marks) > 0 {
		cc.Marks = c.Marks
	}
	return cc
}

// Light is the single preview light. It tracks a part with a fixed offset;
// the engine only hands the bootstrap the final part list, nothing more.
type Light struct {
	Name     string
	Position Vec3
	Energy   float64

	tracked *Object
	offset  Vec3
}

// track follows obj at the configured offset.
func (l *Light) track(obj *Object) {
	l.tracked = obj
	l.update()
}

func (l *Light) update() {
	if l.tracked != nil {
		l.Position = l.tracked.Position.Add(l.offset)
	}
}

// Rig is a fully bootstrapped choreography: the part list, the preview
// camera and light, and the playback over the recorded timeline.
type Rig struct {
	Parts    []*Object
	Camera   *Camera
	Light    *Light
	Playback *Playback

	stage *Stage
	cfg   Config
}

// Bootstrap builds the choreography on a fresh assembly pass over stage and
// wires the preview camera and light to the resulting part list. The light
// tracks the last part in assembly order (the gripper end of the arm); the
// camera centers on the assembly's rest midpoint.
func Bootstrap(stage *Stage, cfg Config) (*Rig, error) {
	cfg = cfg.withDefaults()
	parts, err := BuildChoreography(stage, cfg.choreoConfig())
	if err != nil {
		return nil, err
	}

	cam := NewCamera(cfg.Width, cfg.Height)
	var mid Vec3
	for _, p := range parts {
		mid = mid.Add(p.Position)
	}
	if len(parts) > 0 {
		cam.Target = mid.Mul(1 / float64(len(parts)))
	}

	light := &Light{
		Name:   "preview_light",
		Energy: cfg.Light.Energy,
		offset: Vec3{cfg.Light.OffsetX, cfg.Light.OffsetY, cfg.Light.OffsetZ},
	}
	if len(parts) > 0 {
		light.track(parts[len(parts)-1])
	}

	return &Rig{
		Parts:    parts,
		Camera:   cam,
		Light:    light,
		Playback: NewPlayback(stage, parts, cfg.EaseFunc()),
		stage:    stage,
		cfg:      cfg,
	}, nil
}

// Seek poses the whole rig at the given timeline frame and refreshes the
// tracking light.
func (r *Rig) Seek(frame float64) {
	r.Playback.Apply(frame)
	r.Light.update()
}
