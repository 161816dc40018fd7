package main

import (
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/golang/glog"

	"github.com/fathom3d/fathom/pkg/renderer"
	"github.com/fathom3d/fathom/pkg/scene"
)

var (
	sceneName  = flag.String("scene", "showcase", "Scene to render: 'showcase', 'cornell' or 'mesh'")
	meshPath   = flag.String("mesh", "", "glTF/GLB file for the 'mesh' scene")
	cameraName = flag.String("camera", "main", "Camera to render through")
	width      = flag.Int("width", 800, "Image width in pixels")
	height     = flag.Int("height", 600, "Image height in pixels")
	samples    = flag.Int("samples", 16, "Samples per pixel")
	pattern    = flag.String("pattern", "multijittered", "Sampling pattern: regular, random, jittered, nrooks, multijittered, hammersley")
	workers    = flag.Int("workers", 0, "Render workers (0 = all CPUs)")
	seed       = flag.Int64("seed", 42, "Random seed")
	output     = flag.String("o", "render.png", "Output PNG path")
	cpuprofile = flag.String("cpuprofile", "", "Write a CPU profile to this file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Exitf("Creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Exitf("Starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		glog.Exitf("%v", err)
	}
}

func run() error {
	sc, err := buildScene(*sceneName, *meshPath, *seed)
	if err != nil {
		return err
	}

	cfg := renderer.DefaultConfig()
	cfg.Samples = *samples
	cfg.Workers = *workers
	cfg.Seed = *seed
	kind, err := patternKind(*pattern)
	if err != nil {
		return err
	}
	cfg.Pattern = kind

	glog.Infof("Rendering scene %q through camera %q at %dx%d, %d samples/pixel",
		*sceneName, *cameraName, *width, *height, *samples)

	fb, err := renderer.Render(sc, *cameraName, *width, *height, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.Image(2.0)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	glog.Infof("Wrote %s", *output)
	return nil
}

func buildScene(name, meshPath string, seed int64) (*scene.Scene, error) {
	switch name {
	case "showcase":
		return scene.NewShowcaseScene(rand.New(rand.NewSource(seed))), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	case "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("the 'mesh' scene needs -mesh <file.glb>")
		}
		return scene.NewMeshScene(meshPath)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func patternKind(name string) (renderer.PatternKind, error) {
	switch name {
	case "regular":
		return renderer.PatternRegular, nil
	case "random":
		return renderer.PatternRandom, nil
	case "jittered":
		return renderer.PatternJittered, nil
	case "nrooks":
		return renderer.PatternNRooks, nil
	case "multijittered":
		return renderer.PatternMultiJittered, nil
	case "hammersley":
		return renderer.PatternHammersley, nil
	default:
		return 0, fmt.Errorf("unknown sampling pattern %q", name)
	}
}
