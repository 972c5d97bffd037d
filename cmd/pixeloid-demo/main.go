// Command pixeloid-demo builds a small scene, pans and zooms the
// viewport and writes the composed frames as PNG files.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid"
	"github.com/pixelcanvas/pixeloid/internal/config"
	"github.com/pixelcanvas/pixeloid/internal/raster"
	"github.com/pixelcanvas/pixeloid/pkg/engine"
	"github.com/pixelcanvas/pixeloid/pkg/render"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

func main() {
	pixeloid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pixeloid-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine(), raster.New())
	if err != nil {
		return err
	}
	defer eng.Close()

	red := scene.Style{Fill: color.RGBA{200, 40, 40, 255}, Stroke: color.RGBA{80, 0, 0, 255}}
	blue := scene.Style{Fill: color.RGBA{40, 60, 200, 255}, Stroke: color.RGBA{0, 0, 80, 255}}
	green := scene.Style{Stroke: color.RGBA{20, 140, 60, 255}}

	eng.CreateObject(scene.Rectangle{Min: geom.NewVec(10, 10), Max: geom.NewVec(110, 80)}, red)
	eng.CreateObject(scene.Circle{Center: geom.NewVec(200, 120), Radius: 40}, blue)
	eng.CreateObject(scene.Diamond{Center: geom.NewVec(340, 90), RadiusX: 50, RadiusY: 30}, red)
	eng.CreateObject(scene.Line{From: geom.NewVec(20, 200), To: geom.NewVec(300, 260)}, green)
	eng.CreateObject(scene.Point{At: geom.NewVec(400, 300)}, green)

	compositor := render.NewCompositor(eng, color.RGBA{245, 245, 245, 255})

	outDir := "frames"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	steps := []struct {
		name string
		move func()
	}{
		{"initial", func() {}},
		{"pan", func() { eng.Pan(60, 40) }},
		{"zoom-in", func() { mustZoom(eng, 2) }},
		{"zoom-more", func() { mustZoom(eng, 4) }},
		{"pan-back", func() { eng.Pan(-120, -60) }},
	}

	for i, step := range steps {
		step.move()
		frame, err := compositor.Frame()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("%02d-%s.png", i, step.name))
		if err := writePNG(path, frame); err != nil {
			return err
		}
		fmt.Println("wrote", path)
	}

	// A zoom outside the scale span is rejected with a reason, not an
	// error.
	if decision := eng.CanZoomTo(100); !decision.Allowed {
		fmt.Println("zoom to 100 blocked:", decision.Reason)
	}
	return nil
}

func mustZoom(eng *engine.Engine, target float64) {
	decision, err := eng.Zoom(target)
	if err != nil {
		panic(err)
	}
	if !decision.Allowed {
		fmt.Println("zoom blocked:", decision.Reason)
	}
}

func writePNG(path string, frame image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame)
}
