// Command noisegraph renders a noise-module pipeline into an image.
//
// With -preset it loads a YAML pipeline definition; without one it
// renders a built-in terrain demo (perlin through turbulence with the
// classic sea-to-snow gradient). The output format follows the -o
// extension, .png or .bmp. With -tile a 2x2 tiled preview PNG is
// written next to the output, which makes seams at tile borders easy
// to spot when checking -seamless renders.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"

	"noisegraph/pkg/noise/module"
	"noisegraph/pkg/noisemap"
	"noisegraph/pkg/preset"
)

func main() {
	presetPath := flag.String("preset", "", "YAML pipeline to render (built-in demo when empty)")
	outPath := flag.String("o", "noise.png", "output file, format chosen by extension (.png or .bmp)")
	width := flag.Int("width", 512, "output width in pixels")
	height := flag.Int("height", 512, "output height in pixels")
	bounds := flag.String("bounds", "0:4:0:4", "world window to sample, as x0:x1:z0:z1")
	seamless := flag.Bool("seamless", false, "render a seamlessly tiling raster")
	seed := flag.Int("seed", 0, "seed override for every generator in the pipeline")
	tile := flag.Bool("tile", false, "also write a 2x2 tiled preview PNG")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	var (
		root module.Module
		grad *noisemap.GradientColor
	)
	if *presetPath != "" {
		p, err := preset.Load(*presetPath)
		if err != nil {
			log.Fatalf("noisegraph: %v", err)
		}
		root = p.Root
		grad = p.Gradient
		if seedSet {
			reseed(p.Modules, int32(*seed))
		}
	} else {
		root, grad = demoPipeline(int32(*seed))
	}
	if grad == nil {
		grad = grayscaleGradient()
	}

	x0, x1, z0, z1, err := parseBounds(*bounds)
	if err != nil {
		log.Fatalf("noisegraph: %v", err)
	}

	heightMap := noisemap.NewNoiseMap()
	b := noisemap.NewBuilder()
	b.SetSourceModule(root)
	b.SetDestNoiseMap(heightMap)
	b.SetDestSize(*width, *height)
	b.SetBounds(x0, x1, z0, z1)
	b.EnableSeamless(*seamless)
	if err := b.Build(); err != nil {
		log.Fatalf("noisegraph: build: %v", err)
	}

	img := noisemap.NewImage()
	if err := noisemap.RenderImage(heightMap, grad, img); err != nil {
		log.Fatalf("noisegraph: render: %v", err)
	}

	if err := writeImage(*outPath, img); err != nil {
		log.Fatalf("noisegraph: %v", err)
	}
	log.Printf("noisegraph: wrote %s (%dx%d)", *outPath, *width, *height)

	if *tile {
		previewPath := tilePreviewPath(*outPath)
		if err := writeTiledPreview(previewPath, img); err != nil {
			log.Fatalf("noisegraph: %v", err)
		}
		log.Printf("noisegraph: wrote %s", previewPath)
	}
}

// demoPipeline builds the built-in terrain pipeline: a perlin base
// distorted by gentle turbulence, colored deep sea to snow caps.
func demoPipeline(seed int32) (module.Module, *noisemap.GradientColor) {
	base := module.NewPerlin()
	base.SetSeed(seed)
	base.SetFrequency(2.0)

	swirl := module.NewTurbulence()
	swirl.SetSeed(seed + 10)
	swirl.SetPower(0.125)
	swirl.SetSourceModule(0, base)

	grad := noisemap.NewGradientColor()
	mustAddStop(grad, -1.0000, color.RGBA{R: 0, G: 0, B: 128, A: 255})
	mustAddStop(grad, -0.2500, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	mustAddStop(grad, 0.0000, color.RGBA{R: 0, G: 128, B: 255, A: 255})
	mustAddStop(grad, 0.0625, color.RGBA{R: 240, G: 240, B: 64, A: 255})
	mustAddStop(grad, 0.1250, color.RGBA{R: 32, G: 160, B: 0, A: 255})
	mustAddStop(grad, 0.7500, color.RGBA{R: 224, G: 224, B: 0, A: 255})
	mustAddStop(grad, 1.0000, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return swirl, grad
}

func grayscaleGradient() *noisemap.GradientColor {
	grad := noisemap.NewGradientColor()
	mustAddStop(grad, -1.0, color.RGBA{A: 255})
	mustAddStop(grad, 1.0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return grad
}

func mustAddStop(grad *noisemap.GradientColor, pos float64, c color.RGBA) {
	if err := grad.AddGradientPoint(pos, c); err != nil {
		log.Fatalf("noisegraph: gradient: %v", err)
	}
}

// reseed forces one seed onto every seedable module of a loaded
// pipeline, overriding both the document seed and per-module seeds.
func reseed(modules map[string]module.Module, seed int32) {
	type seeder interface{ SetSeed(int32) }
	for _, m := range modules {
		if s, ok := m.(seeder); ok {
			s.SetSeed(seed)
		}
	}
}

func parseBounds(s string) (x0, x1, z0, z1 float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("bounds %q: want x0:x1:z0:z1", s)
	}
	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, perr := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("bounds %q: %v", s, perr)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

func writeImage(path string, img *noisemap.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return gg.SavePNG(path, img.RGBA())
	case ".bmp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := bmp.Encode(f, img.RGBA()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}

// writeTiledPreview draws the rendered image in a 2x2 grid.
func writeTiledPreview(path string, img *noisemap.Image) error {
	tileImg := img.RGBA()
	w := tileImg.Bounds().Dx()
	h := tileImg.Bounds().Dy()

	ctx := gg.NewContext(w*2, h*2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			ctx.DrawImage(tileImg, x*w, y*h)
		}
	}
	return ctx.SavePNG(path)
}

func tilePreviewPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + "-tiled.png"
}
