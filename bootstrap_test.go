package armature

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	d := DefaultConfig()
	if cfg.Width != d.Width || cfg.Height != d.Height || cfg.FPS != d.FPS {
		t.Errorf("zero config did not pick up defaults: %+v", cfg)
	}
	if cfg.Easing != "linear" || cfg.Collection != "Collection" {
		t.Errorf("zero config strings not defaulted: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("width: 320\nheight: 240\neasing: cubic\nmarks: [1, 50, 100, 150, 200]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
	if cfg.Easing != "cubic" {
		t.Errorf("easing = %q, want cubic", cfg.Easing)
	}
	if len(cfg.Marks) != 5 || cfg.Marks[4] != 200 {
		t.Errorf("marks = %v", cfg.Marks)
	}
	// Unset fields keep their defaults.
	if cfg.FPS != DefaultConfig().FPS {
		t.Errorf("fps = %d, want default", cfg.FPS)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestConfigEaseFuncFallsBackToLinear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Easing = "bounce-typo"
	fn := cfg.EaseFunc()
	// Linear: halfway through yields half the change.
	if got := fn(50, 0, 10, 100); got != 5 {
		t.Errorf("fallback ease(50, 0, 10, 100) = %v, want 5", got)
	}
}

func TestBootstrapWiresRig(t *testing.T) {
	rig, err := Bootstrap(seedStage(), DefaultConfig())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(rig.Parts) != 14 {
		t.Fatalf("part count = %d, want 14", len(rig.Parts))
	}
	if rig.Camera == nil || rig.Light == nil || rig.Playback == nil {
		t.Fatal("rig missing camera, light, or playback")
	}

	// The light tracks the last part in assembly order.
	end := rig.Parts[len(rig.Parts)-1]
	want := end.Position.Add(Vec3{2, -2, 3})
	assertVec3(t, "light position", rig.Light.Position, want)

	// Seeking moves the light with its tracked part.
	rig.Seek(150)
	want = end.Position.Add(Vec3{2, -2, 3})
	assertVec3(t, "light tracks after seek", rig.Light.Position, want)
}

func TestBootstrapPropagatesAssemblyFailure(t *testing.T) {
	stage := seedStage()
	stage.remove(stage.ObjectByName("PLATE"))
	if _, err := Bootstrap(stage, DefaultConfig()); err == nil {
		t.Error("expected assembly failure to surface from Bootstrap")
	}
}
