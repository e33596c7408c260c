// Package pixbuf owns the reusable intensity buffer that camera frames are
// copied into before decoding.
package pixbuf

import (
	"image"

	"github.com/pkg/errors"
)

// PixelFormat is a V4L2-style fourcc tag.
type PixelFormat uint32

const (
	// FormatNV21 is the only pixel format accepted from a live camera
	// frame: a full-resolution luma plane followed by one interleaved,
	// 2x2-subsampled chroma plane. Only the luma plane is ever read.
	FormatNV21 PixelFormat = 'N' | 'V'<<8 | '2'<<16 | '1'<<24
	// FormatGray tags the owned single-channel intensity buffer.
	FormatGray PixelFormat = 'G' | 'R'<<8 | 'E'<<16 | 'Y'<<24
)

func (f PixelFormat) String() string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// ErrInvalidFormat reports a source frame whose pixel format is not the
// supported capture format.
var ErrInvalidFormat = errors.New("invalid image format")

// Plane is one pixel plane of a source frame. Stride is the distance in
// bytes between the starts of consecutive rows and may exceed the frame
// width.
type Plane struct {
	Data   []byte
	Stride int
}

// SourceFrame is the inbound contract from the camera pipeline. It is read
// synchronously and never retained: Release hands the frame memory back to
// the producer and is invoked on every exit path of Manager.Acquire.
type SourceFrame struct {
	Width    int
	Height   int
	Format   PixelFormat
	Planes   []Plane
	Crop     image.Rectangle // zero rectangle = full frame
	Rotation int             // degrees, 0/90/180/270
	Release  func()
}

// Buffer is a single-channel intensity image.
type Buffer struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format PixelFormat
}

// NewBuffer allocates a gray buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]byte, width*height),
		Stride: width,
		Width:  width,
		Height: height,
		Format: FormatGray,
	}
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Gray returns an image view sharing the buffer's pixel storage.
func (b *Buffer) Gray() *image.Gray {
	return &image.Gray{Pix: b.Pix, Stride: b.Stride, Rect: b.Bounds()}
}

// Manager retains at most one live buffer and reuses it across frames of
// the same geometry, so a steady camera stream costs no per-frame
// allocation. It has no internal locking: one acquire at a time.
type Manager struct {
	buf *Buffer
}

// Acquire copies the luma plane of frame into the retained buffer and
// returns it. The buffer is reallocated only when the frame geometry
// differs from the current buffer's. The frame is released before Acquire
// returns, on every path, including failures.
func (m *Manager) Acquire(frame *SourceFrame) (*Buffer, error) {
	if frame.Release != nil {
		defer frame.Release()
	}

	if frame.Format != FormatNV21 {
		return nil, errors.Wrapf(ErrInvalidFormat, "source format %s", frame.Format)
	}
	if len(frame.Planes) == 0 {
		return nil, errors.New("source frame has no pixel planes")
	}
	luma := frame.Planes[0]
	if need := luma.Stride*(frame.Height-1) + frame.Width; len(luma.Data) < need {
		return nil, errors.Errorf("luma plane too short: %d bytes for %dx%d stride %d",
			len(luma.Data), frame.Width, frame.Height, luma.Stride)
	}

	if m.buf == nil || m.buf.Width != frame.Width || m.buf.Height != frame.Height || m.buf.Format != FormatGray {
		m.buf = NewBuffer(frame.Width, frame.Height)
	}

	// Source and destination strides may differ, copy row by row.
	for y := 0; y < frame.Height; y++ {
		src := luma.Data[y*luma.Stride:]
		copy(m.buf.Pix[y*m.buf.Stride:(y+1)*m.buf.Stride], src[:frame.Width])
	}
	return m.buf, nil
}
