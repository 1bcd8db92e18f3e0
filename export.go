package armature

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// encodeWorkers bounds concurrent PNG encodes during frame export.
const encodeWorkers = 4

// ExportFrames renders the rig's full loop to numbered PNG files under
// cfg.OutputDir, one file per FrameStep timeline frames. Posing and
// rasterizing are sequential — the parts are shared mutable state — while
// encoding fans out across workers.
func (r *Rig) ExportFrames() error {
	cfg := r.cfg
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("armature: mkdir %s: %w", cfg.OutputDir, err)
	}

	var g errgroup.Group
	g.SetLimit(encodeWorkers)

	first, last := r.Playback.First(), r.Playback.Last()
	for frame := first; frame <= last; frame += cfg.FrameStep {
		r.Seek(float64(frame))
		img := r.rasterize()
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.png", frame))
		g.Go(func() error {
			return writePNG(path, img)
		})
	}
	return g.Wait()
}

// rasterize draws the current pose into a fresh image: bone lines along the
// recorded parent chain, a filled marker per part, and the preview light.
// Rendering happens at 2x and is downsampled for cheap antialiasing.
func (r *Rig) rasterize() *image.NRGBA {
	cam := *r.Camera
	cam.Width *= 2
	cam.Height *= 2
	cam.Zoom *= 2

	big := image.NewNRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	fill(big, color.NRGBA{18, 18, 24, 255})

	boneCol := color.NRGBA{90, 100, 120, 255}
	partCol := color.NRGBA{210, 215, 230, 255}
	lightCol := color.NRGBA{255, 220, 90, 255}

	for _, p := range r.Parts {
		if p.Parent == nil {
			continue
		}
		x0, y0 := cam.Project(p.Parent.Position)
		x1, y1 := cam.Project(p.Position)
		drawLine(big, x0, y0, x1, y1, boneCol)
	}
	for _, p := range r.Parts {
		x, y := cam.Project(p.Position)
		drawDisc(big, x, y, cam.MarkerRadius(p), partCol)
	}
	lx, ly := cam.Project(r.Light.Position)
	drawDisc(big, lx, ly, 6, lightCol)

	out := image.NewNRGBA(image.Rect(0, 0, r.Camera.Width, r.Camera.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func fill(img *image.NRGBA, c color.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// drawDisc draws a filled circle clipped to the image bounds.
func drawDisc(img *image.NRGBA, cx, cy, radius float64, c color.NRGBA) {
	r2 := radius * radius
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawLine draws a 1px line using simple DDA stepping.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		steps = 1
	}
	b := img.Bounds()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x0 + dx*t)
		y := int(y0 + dy*t)
		if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
			img.SetNRGBA(x, y, c)
		}
	}
}
