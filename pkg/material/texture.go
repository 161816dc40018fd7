package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadImageTexture
	_ "image/png"
	"os"

	"github.com/fathom3d/fathom/pkg/vmath"
)

// Texture provides spatially-varying colors for materials. UV drives image
// textures; the world point drives procedural ones.
type Texture interface {
	Lookup(uv vmath.Vec2, point vmath.Vec3) vmath.Color
}

// Solid is a uniform color
type Solid struct {
	C vmath.Color
}

// NewSolid creates a solid color texture
func NewSolid(c vmath.Color) *Solid {
	return &Solid{C: c}
}

// Lookup returns the solid color regardless of UV or position
func (s *Solid) Lookup(vmath.Vec2, vmath.Vec3) vmath.Color {
	return s.C
}

// Checker alternates two colors on a world-space grid
type Checker struct {
	A, B vmath.Color
	Size vmath.Real // edge length of one cell
}

// NewChecker creates a checker texture with the given cell size
func NewChecker(a, b vmath.Color, size vmath.Real) *Checker {
	return &Checker{A: a, B: b, Size: size}
}

// Lookup picks a color by the parity of the containing cell
func (c *Checker) Lookup(_ vmath.Vec2, point vmath.Vec3) vmath.Color {
	sum := int(vmath.Floor(point.X/c.Size)) +
		int(vmath.Floor(point.Y/c.Size)) +
		int(vmath.Floor(point.Z/c.Size))
	if sum%2 == 0 {
		return c.A
	}
	return c.B
}

// Image samples a decoded image by UV, wrapping coordinates outside [0,1).
type Image struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageTexture wraps a decoded image
func NewImageTexture(img image.Image) *Image {
	return &Image{img: img, bounds: img.Bounds()}
}

// LoadImageTexture decodes a PNG or JPEG file into an image texture
func LoadImageTexture(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return NewImageTexture(img), nil
}

// Lookup maps UV to the nearest texel, v=0 at the bottom row
func (t *Image) Lookup(uv vmath.Vec2, _ vmath.Vec3) vmath.Color {
	u := vmath.Fract01(uv.X)
	v := vmath.Fract01(uv.Y)

	x := t.bounds.Min.X + int(u*vmath.Real(t.bounds.Dx()))
	y := t.bounds.Min.Y + int((1-v)*vmath.Real(t.bounds.Dy()))
	if x >= t.bounds.Max.X {
		x = t.bounds.Max.X - 1
	}
	if y >= t.bounds.Max.Y {
		y = t.bounds.Max.Y - 1
	}

	r, g, b, _ := t.img.At(x, y).RGBA()
	return vmath.NewColor(
		vmath.Real(r)/65535.0,
		vmath.Real(g)/65535.0,
		vmath.Real(b)/65535.0,
	)
}
