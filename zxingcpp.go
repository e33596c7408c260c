// Package zxingcpp adapts camera frames and static bitmaps to the native
// zxing-cpp barcode decoder.
package zxingcpp

import (
	"fmt"
	"image"
	"time"

	"github.com/ufocruz/zxing-cpp/barcode"
	"github.com/ufocruz/zxing-cpp/engine"
	"github.com/ufocruz/zxing-cpp/pixbuf"
)

// GeometryError reports a crop rectangle that does not fit inside the
// buffer. It is raised before the engine is invoked and never clamped.
type GeometryError struct {
	Crop   image.Rectangle
	Bounds image.Rectangle
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("crop %v outside buffer bounds %v", e.Crop, e.Bounds)
}

// EngineError carries a failure message reported by the native engine,
// verbatim.
type EngineError struct {
	Detail string
}

func (e *EngineError) Error() string {
	return "engine: " + e.Detail
}

// Reader decodes barcodes out of camera frames. It owns a single reusable
// pixel buffer and is therefore not safe for concurrent use: keep at most
// one decode in flight per Reader.
type Reader struct {
	mgr  pixbuf.Manager
	call engine.Func
	opts barcode.Options
}

// NewReader returns a Reader bound to the native engine.
func NewReader(opts barcode.Options) *Reader {
	return &Reader{call: engine.Native, opts: opts}
}

// SetOptions replaces the options used by subsequent decodes.
func (r *Reader) SetOptions(opts barcode.Options) {
	r.opts = opts
}

// ReadFrame copies the live frame into the retained buffer and decodes it
// using the frame's own crop and rotation. The frame is released before
// ReadFrame returns. A nil result with a nil error means no symbol was
// found in this frame.
func (r *Reader) ReadFrame(frame *pixbuf.SourceFrame) (*barcode.Result, error) {
	buf, err := r.mgr.Acquire(frame)
	if err != nil {
		return nil, err
	}
	return r.Decode(buf, frame.Crop, frame.Rotation)
}

// ReadImage decodes a static bitmap through a standalone buffer; the
// retained camera buffer is untouched.
func (r *Reader) ReadImage(img image.Image) (*barcode.Result, error) {
	return r.Decode(pixbuf.FromImage(img), image.Rectangle{}, 0)
}

// Decode runs the engine once over crop, rotated by rotation degrees (0,
// 90, 180 or 270; the rotation is applied engine-side). The zero rectangle
// selects the full buffer. It returns the decoded symbol, nil when the
// engine found none, or an error.
func (r *Reader) Decode(buf *pixbuf.Buffer, crop image.Rectangle, rotation int) (*barcode.Result, error) {
	bounds := buf.Bounds()
	if crop.Empty() {
		crop = bounds
	} else if !crop.In(bounds) {
		return nil, &GeometryError{Crop: crop, Bounds: bounds}
	}

	req := &engine.Request{
		Pix:        buf.Pix,
		Width:      buf.Width,
		Height:     buf.Height,
		Stride:     buf.Stride,
		Left:       crop.Min.X,
		Top:        crop.Min.Y,
		CropWidth:  crop.Dx(),
		CropHeight: crop.Dy(),
		Rotation:   rotation,
		Formats:    r.opts.FormatList(),
		TryHarder:  r.opts.TryHarder,
		TryRotate:  r.opts.TryRotate,
	}
	var payload engine.Payload
	return translate(r.call(req, &payload), &payload)
}

// translate converts the engine's raw outcome into the three-way result:
// a decoded symbol, nothing, or a surfaced engine failure. Raw outcomes are
// never passed through to callers.
func translate(raw string, payload *engine.Payload) (*barcode.Result, error) {
	if raw == "" || raw == engine.NoBarcode {
		return nil, nil
	}
	format, ok := barcode.ParseFormat(raw)
	if !ok || format == barcode.FormatNone {
		return nil, &EngineError{Detail: raw}
	}
	return &barcode.Result{
		Format: format,
		Text:   payload.Text,
		Time:   time.Duration(payload.TimeMS) * time.Millisecond,
	}, nil
}
