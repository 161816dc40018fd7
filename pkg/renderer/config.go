package renderer

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/sampling"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// PatternKind selects the anti-aliasing sample generator.
type PatternKind int

const (
	PatternRegular PatternKind = iota
	PatternRandom
	PatternJittered
	PatternNRooks
	PatternMultiJittered
	PatternHammersley
)

// Config controls one render invocation.
type Config struct {
	Samples     int         // samples per pixel; grid generators use the nearest square
	Pattern     PatternKind // anti-aliasing pattern family
	PatternSets int         // number of patterns to decorrelate across pixels

	// ShadowBias is the minimum shadow-ray t accepted, suppressing
	// self-shadowing acne. Whether it should scale with scene extent is
	// unresolved; treat it as a per-scene tuning knob.
	ShadowBias vmath.Real

	Workers int   // parallel row workers; 0 means NumCPU, 1 is serial
	Seed    int64 // base RNG seed; per-row streams derive from it
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Samples:     16,
		Pattern:     PatternMultiJittered,
		PatternSets: 64,
		ShadowBias:  1e-3,
		Seed:        42,
	}
}

// buildPatterns generates the anti-aliasing pattern set for the config.
// Grid-based generators round the sample count to a square grid.
func (c Config) buildPatterns(rng *rand.Rand) sampling.Set {
	side := 1
	for (side+1)*(side+1) <= c.Samples {
		side++
	}
	sets := c.PatternSets
	if sets < 1 {
		sets = 1
	}

	switch c.Pattern {
	case PatternRegular:
		return sampling.Regular(side, side)
	case PatternRandom:
		return sampling.Random(sets, c.Samples, rng)
	case PatternJittered:
		return sampling.Jittered(sets, side, side, rng)
	case PatternNRooks:
		return sampling.NRooks(sets, c.Samples, rng)
	case PatternMultiJittered:
		return sampling.MultiJittered(sets, side, side, rng)
	case PatternHammersley:
		return sampling.Hammersley(c.Samples)
	default:
		return sampling.MultiJittered(sets, side, side, rng)
	}
}
