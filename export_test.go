package armature

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestExportFramesWritesLoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.FrameStep = 100
	cfg.OutputDir = t.TempDir()

	rig, err := Bootstrap(seedStage(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := rig.ExportFrames(); err != nil {
		t.Fatalf("ExportFrames: %v", err)
	}

	// Marks 1..400 stepped by 100 yields frames 1, 101, 201, 301.
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("frame count = %d, want 4", len(entries))
	}

	f, err := os.Open(filepath.Join(cfg.OutputDir, "frame_0001.png"))
	if err != nil {
		t.Fatalf("first frame missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("frame size = %v, want 64x48", img.Bounds())
	}
}

func TestRasterizeMatchesConfiguredSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 80
	cfg.Height = 60

	rig, err := Bootstrap(seedStage(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	rig.Seek(1)
	img := rig.rasterize()
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
		t.Errorf("rasterized size = %v, want 80x60", img.Bounds())
	}
}
