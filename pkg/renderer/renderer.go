// Package renderer is the integrator: it ties cameras, sampling, geometry,
// lights and materials together into the per-pixel render loop.
package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/fathom3d/fathom/pkg/camera"
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/sampling"
	"github.com/fathom3d/fathom/pkg/scene"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// Render draws the scene through the named camera into a new framebuffer.
// The scene is read-only for the duration; rows are rendered in parallel,
// each with its own RNG stream derived from cfg.Seed, so results are
// reproducible for a fixed seed regardless of worker count.
func Render(sc *scene.Scene, cameraName string, width, height int, cfg Config) (*Framebuffer, error) {
	cam, err := sc.TakeCamera(cameraName)
	if err != nil {
		return nil, err
	}

	setupRNG := rand.New(rand.NewSource(cfg.Seed))
	aa := cfg.buildPatterns(setupRNG)
	if aa.PointsPerPattern() == 0 {
		return nil, fmt.Errorf("sampling config produced an empty pattern set")
	}
	lens := sampling.ToDisc(aa)

	r := &render{
		scene:  sc,
		camera: cam,
		cfg:    cfg,
		width:  width,
		height: height,
		aa:     aa,
		lens:   lens,
	}

	fb := NewFramebuffer(width, height)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(y)*1099511628211))
			row := fb.Row(y)
			for x := 0; x < width; x++ {
				row[x] = r.pixel(x, y, rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	glog.V(1).Infof("rendered %dx%d with %d samples/pixel in %v",
		width, height, aa.PointsPerPattern(), time.Since(start))
	return fb, nil
}

type render struct {
	scene  *scene.Scene
	camera camera.Camera
	cfg    Config
	width  int
	height int
	aa     sampling.Set
	lens   []sampling.DiscPattern
}

// pixel averages one anti-aliasing pattern's worth of samples over the
// pixel's footprint (box filter). One pattern is drawn per pixel so the
// stratification structure does not align across neighbors.
func (r *render) pixel(x, y int, rng *rand.Rand) vmath.Color {
	patIdx := 0
	if len(r.aa.Patterns) > 1 {
		patIdx = rng.Intn(len(r.aa.Patterns))
	}
	pattern := r.aa.Patterns[patIdx]
	lensPattern := r.lens[patIdx]

	var accum vmath.Color
	for s, offset := range pattern {
		// Image rows grow downward, world up is +v: flip y.
		px := vmath.Real(x) + offset.X
		py := vmath.Real(r.height-1-y) + offset.Y

		ray, ok := r.camera.Ray(r.width, r.height, vmath.NewVec2(px, py), lensPattern[s])
		if !ok {
			continue // pixel outside the camera's projection domain
		}
		accum = accum.Add(r.trace(ray, rng))
	}
	return accum.Scale(1 / vmath.Real(len(pattern)))
}

// trace finds the nearest surface along the ray and shades it with the
// lights that actually reach it; a miss contributes the background color.
func (r *render) trace(ray vmath.Ray, rng *rand.Rand) vmath.Color {
	hit, ok := r.nearestHit(ray)
	if !ok {
		return r.scene.Background
	}

	obj := hit.object
	sp := hit.hit

	shadow := r.shadowTest()
	var lit []lights.Light
	for _, l := range r.scene.Lights {
		if l.Illuminates(sp, shadow, rng) {
			lit = append(lit, l)
		}
	}

	return obj.Material.Shade(sp, ray.Dir.Negate(), lit)
}

type objectHit struct {
	object *scene.Object
	hit    geometry.Hit
}

// nearestHit linearly scans every object, keeping the minimum-t hit with
// t > 0. There is deliberately no acceleration structure.
func (r *render) nearestHit(ray vmath.Ray) (objectHit, bool) {
	best := objectHit{}
	bestT := vmath.Inf()
	found := false
	for i := range r.scene.Objects {
		obj := &r.scene.Objects[i]
		for _, h := range obj.Intersect(ray) {
			if h.T <= 0 || h.T >= bestT {
				continue
			}
			bestT = h.T
			best = objectHit{object: obj, hit: h}
			found = true
		}
	}
	return best, found
}

// shadowTest builds the visibility closure handed to lights: a full linear
// scan filtered by t > ShadowBias and, when bounded, t < maxDist.
func (r *render) shadowTest() lights.ShadowTest {
	return func(ray vmath.Ray, maxDist vmath.Real) (vmath.Real, bool) {
		bestT := vmath.Inf()
		found := false
		for i := range r.scene.Objects {
			obj := &r.scene.Objects[i]
			for _, h := range obj.Intersect(ray) {
				if h.T <= r.cfg.ShadowBias {
					continue
				}
				if !vmath.IsInf(maxDist) && h.T >= maxDist {
					continue
				}
				if h.T < bestT {
					bestT = h.T
					found = true
				}
			}
		}
		return bestT, found
	}
}
