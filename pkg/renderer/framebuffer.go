package renderer

import (
	"image"
	"image/color"

	"github.com/fathom3d/fathom/pkg/vmath"
)

// Framebuffer is the render target: a row-major buffer of linear colors with
// the origin at the top-left pixel. It is the only thing the core hands to
// the outside world; encoders consume it.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []vmath.Color
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]vmath.Color, width*height),
	}
}

// Set writes one pixel
func (f *Framebuffer) Set(x, y int, c vmath.Color) {
	f.Pixels[y*f.Width+x] = c
}

// At reads one pixel
func (f *Framebuffer) At(x, y int) vmath.Color {
	return f.Pixels[y*f.Width+x]
}

// Row returns the slice backing one scanline; rows are disjoint, which is
// what lets parallel workers write without locks.
func (f *Framebuffer) Row(y int) []vmath.Color {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// Image converts the buffer to an 8-bit RGBA image with gamma correction
// and clamping.
func (f *Framebuffer) Image(gamma vmath.Real) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := vmath.GammaCorrect(f.At(x, y), gamma).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
