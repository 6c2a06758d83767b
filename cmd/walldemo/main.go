// Command walldemo shoots random impacts into a wall and renders the front
// face of the resulting mesh to a PNG.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/wallbreak"
	"github.com/gogpu/wallbreak/mesh"
)

func main() {
	var (
		width     = flag.Float64("width", 4, "wall width")
		height    = flag.Float64("height", 3, "wall height")
		thickness = flag.Float64("thickness", 0.2, "wall thickness")
		impacts   = flag.Int("impacts", 40, "number of impacts")
		intensity = flag.Float64("intensity", 0.25, "impact radius")
		seed      = flag.Uint64("seed", 1, "random seed")
		workers   = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		scale     = flag.Float64("scale", 150, "pixels per wall unit")
		output    = flag.String("output", "wall.png", "output file")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		wallbreak.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	size := mgl32.Vec3{float32(*width), float32(*height), float32(*thickness)}
	w, err := wallbreak.NewWall(size,
		wallbreak.WithWorkers(*workers),
		wallbreak.WithRand(rng),
	)
	if err != nil {
		log.Fatalf("Failed to create wall: %v", err)
	}
	defer func() { _ = w.Close() }()

	start := time.Now()
	accepted := 0
	for range *impacts {
		x := (rng.Float32() - 0.5) * size.X()
		y := rng.Float32() * size.Y()
		ray := wallbreak.Ray{Origin: mgl32.Vec3{x, y, -10}, Direction: mgl32.Vec3{0, 0, 1}}
		r := float32(*intensity) * (0.5 + rng.Float32())
		if w.AddImpact(ray, r) {
			accepted++
		}
		w.Tick()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := w.Flush(ctx); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}
	elapsed := time.Since(start)

	m := w.Mesh()
	img := render(m, size, *scale)
	stats := w.Stats()

	p := message.NewPrinter(language.English)
	label := p.Sprintf("%d impacts, %d updates, %d triangles", accepted, w.Completed(), m.TriangleCount())
	if err := drawLabel(img, label); err != nil {
		log.Fatalf("Failed to draw label: %v", err)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p.Printf("Wall saved to %s\n", *output)
	p.Printf("  impacts:   %d accepted of %d\n", accepted, *impacts)
	p.Printf("  updates:   %d in %v\n", w.Completed(), elapsed.Round(time.Microsecond))
	p.Printf("  polygons:  %d (%d holes, %d dropped last update)\n", stats.Polygons, stats.Holes, stats.Dropped)
	p.Printf("  mesh:      %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	p.Printf("  area:      %.3f of %.3f\n", w.Subjects().Area(), *width**height)
}

// render fills the front faces of m, seen from -Z, into a new image.
func render(m *mesh.Mesh, size mgl32.Vec3, scale float64) *image.RGBA {
	const margin = 20
	wpx := int(float64(size.X())*scale) + 2*margin
	hpx := int(float64(size.Y())*scale) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, wpx, hpx))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{24, 26, 33, 255}), image.Point{}, draw.Src)

	toPixel := func(v mgl32.Vec3) (float32, float32) {
		x := (float64(v.X()+size.X()/2))*scale + margin
		y := (float64(size.Y()-v.Y()))*scale + margin
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(wpx, hpx)
	for i := range m.TriangleCount() {
		a, b, c := m.Triangle(i)
		if b.Sub(a).Cross(c.Sub(a)).Z() >= 0 {
			continue
		}
		ax, ay := toPixel(a)
		bx, by := toPixel(b)
		cx, cy := toPixel(c)
		z.MoveTo(ax, ay)
		z.LineTo(bx, by)
		z.LineTo(cx, cy)
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{196, 164, 132, 255}), image.Point{})
	return img
}

func drawLabel(img *image.RGBA, label string) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() { _ = face.Close() }()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(6, img.Bounds().Dy()-5),
	}
	d.DrawString(label)
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
