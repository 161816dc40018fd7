// Package sampling generates the stratified sample-point patterns used for
// anti-aliasing, depth-of-field lens sampling and ambient-occlusion
// hemisphere sampling. Patterns are generated once up front; the renderer
// draws one pattern per pixel to decorrelate aliasing between neighbors while
// each pattern individually stays stratified.
package sampling

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/vmath"
)

// Pattern is an ordered, fixed-size set of sample points in [0,1)².
type Pattern []vmath.Vec2

// Set is a collection of patterns sharing a point count.
type Set struct {
	Patterns []Pattern
}

// Choose draws one pattern uniformly at random from the set
func (s Set) Choose(rng *rand.Rand) Pattern {
	if len(s.Patterns) == 1 {
		return s.Patterns[0]
	}
	return s.Patterns[rng.Intn(len(s.Patterns))]
}

// PointsPerPattern returns the sample count of each pattern in the set
func (s Set) PointsPerPattern() int {
	if len(s.Patterns) == 0 {
		return 0
	}
	return len(s.Patterns[0])
}

// Regular generates a single deterministic grid pattern of rows*cols points.
// Points sit at (i+1)/(n+1) steps so none touch the domain boundary.
func Regular(rows, cols int) Set {
	p := make(Pattern, 0, rows*cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			p = append(p, vmath.NewVec2(
				vmath.Real(c)/vmath.Real(cols+1),
				vmath.Real(r)/vmath.Real(rows+1),
			))
		}
	}
	return Set{Patterns: []Pattern{p}}
}

// Random generates count patterns of samples independent uniform points each
func Random(count, samples int, rng *rand.Rand) Set {
	patterns := make([]Pattern, count)
	for i := range patterns {
		p := make(Pattern, samples)
		for j := range p {
			p[j] = vmath.NewVec2(rng.Float64(), rng.Float64())
		}
		patterns[i] = p
	}
	return Set{Patterns: patterns}
}

// Jittered generates count patterns of rows*cols points, one per grid cell,
// each perturbed uniformly within its cell.
func Jittered(count, rows, cols int, rng *rand.Rand) Set {
	patterns := make([]Pattern, count)
	for i := range patterns {
		p := make(Pattern, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p = append(p, vmath.NewVec2(
					(vmath.Real(c)+rng.Float64())/vmath.Real(cols),
					(vmath.Real(r)+rng.Float64())/vmath.Real(rows),
				))
			}
		}
		patterns[i] = p
	}
	return Set{Patterns: patterns}
}

// NRooks generates count patterns of samples points placed on the jittered
// diagonal of an implicit samples×samples grid, then shuffled so each row and
// each column holds exactly one point.
func NRooks(count, samples int, rng *rand.Rand) Set {
	patterns := make([]Pattern, count)
	n := vmath.Real(samples)
	for i := range patterns {
		p := make(Pattern, samples)
		for j := range p {
			p[j] = vmath.NewVec2(
				(vmath.Real(j)+rng.Float64())/n,
				(vmath.Real(j)+rng.Float64())/n,
			)
		}
		// Two permutations drawn independently, one per axis, so the
		// axes stay uncorrelated.
		rng.Shuffle(samples, func(a, b int) { p[a].X, p[b].X = p[b].X, p[a].X })
		rng.Shuffle(samples, func(a, b int) { p[a].Y, p[b].Y = p[b].Y, p[a].Y })
		patterns[i] = p
	}
	return Set{Patterns: patterns}
}

// MultiJittered generates count patterns of rows*cols points that are
// stratified on the rows×cols grid and simultaneously on the finer
// (rows*cols)×(rows*cols) grid (Latin-hypercube in both axes).
func MultiJittered(count, rows, cols int, rng *rand.Rand) Set {
	patterns := make([]Pattern, count)
	samples := rows * cols
	for i := range patterns {
		p := make(Pattern, 0, samples)
		// Each grid column owns a pool of fine sub-column indices handed out
		// across its rows without replacement, and each grid row owns a pool
		// of fine sub-row indices handed out across its columns. Every
		// sample therefore lands in a distinct column and row of the fine
		// samples×samples grid (Latin hypercube) while still occupying its
		// own coarse cell.
		subX := make([][]int, cols)
		subY := make([][]int, rows)
		for c := 0; c < cols; c++ {
			subX[c] = randomIndexPool(rows, rng)
		}
		for r := 0; r < rows; r++ {
			subY[r] = randomIndexPool(cols, rng)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				sx := vmath.Real(subX[c][r])
				sy := vmath.Real(subY[r][c])
				p = append(p, vmath.NewVec2(
					(vmath.Real(c)+(sx+rng.Float64())/vmath.Real(rows))/vmath.Real(cols),
					(vmath.Real(r)+(sy+rng.Float64())/vmath.Real(cols))/vmath.Real(rows),
				))
			}
		}
		patterns[i] = p
	}
	return Set{Patterns: patterns}
}

func randomIndexPool(n int, rng *rand.Rand) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(n, func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
	return pool
}

// Hammersley generates the deterministic low-discrepancy sequence
// (i/n, radicalInverse2(i)) as a single pattern.
func Hammersley(samples int) Set {
	p := make(Pattern, samples)
	for i := range p {
		p[i] = vmath.NewVec2(vmath.Real(i)/vmath.Real(samples), radicalInverse2(uint32(i)))
	}
	return Set{Patterns: []Pattern{p}}
}

// radicalInverse2 mirrors the base-2 digits of i about the radix point
func radicalInverse2(i uint32) vmath.Real {
	i = (i << 16) | (i >> 16)
	i = ((i & 0x00ff00ff) << 8) | ((i & 0xff00ff00) >> 8)
	i = ((i & 0x0f0f0f0f) << 4) | ((i & 0xf0f0f0f0) >> 4)
	i = ((i & 0x33333333) << 2) | ((i & 0xcccccccc) >> 2)
	i = ((i & 0x55555555) << 1) | ((i & 0xaaaaaaaa) >> 1)
	return vmath.Real(i) * (1.0 / 4294967296.0)
}
