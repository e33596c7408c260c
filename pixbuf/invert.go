package pixbuf

import (
	"image"

	"github.com/disintegration/imaging"
)

// Invert returns a new buffer whose intensity at every pixel is 255 minus
// the input's. The input is left untouched: the transform runs through a
// full-color intermediate (each color channel scaled by -1 and offset by
// 255, alpha passed through) and is then collapsed back to one channel.
// Some engines are biased toward dark-on-light symbols, so a frame that
// failed to decode can be retried inverted without touching the camera.
func Invert(b *Buffer) *Buffer {
	inverted := imaging.Grayscale(imaging.Invert(b.Gray()))
	out := NewBuffer(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		row := inverted.Pix[y*inverted.Stride:]
		for x := 0; x < b.Width; x++ {
			out.Pix[y*out.Stride+x] = row[x*4]
		}
	}
	return out
}

// FromImage converts an arbitrary bitmap into a standalone intensity
// buffer. Used for the static-image decode path; live frames go through
// Manager.Acquire instead.
func FromImage(img image.Image) *Buffer {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	out := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Stride+x] = row[x*4]
		}
	}
	return out
}
