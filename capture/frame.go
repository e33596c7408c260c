package capture

import (
	"github.com/blackjack/webcam"
	"github.com/pkg/errors"

	"github.com/ufocruz/zxing-cpp/pixbuf"
)

const fourccNV21 = webcam.PixelFormat(pixbuf.FormatNV21)

// negotiate selects NV21 capture at the largest frame size the device
// offers. Any device that can not produce NV21 is rejected here rather
// than converted.
func negotiate(cam *webcam.Webcam) (int, int, error) {
	if _, ok := cam.GetSupportedFormats()[fourccNV21]; !ok {
		return 0, 0, errors.New("device does not support NV21 capture")
	}

	sizes := cam.GetSupportedFrameSizes(fourccNV21)
	if len(sizes) == 0 {
		return 0, 0, errors.New("device reports no NV21 frame sizes")
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.MaxWidth*s.MaxHeight > best.MaxWidth*best.MaxHeight {
			best = s
		}
	}

	format, w, h, err := cam.SetImageFormat(fourccNV21, best.MaxWidth, best.MaxHeight)
	if err != nil {
		return 0, 0, errors.Wrap(err, "can not set image format")
	}
	if format != fourccNV21 {
		return 0, 0, errors.Errorf("device switched to unexpected format %s", pixbuf.PixelFormat(format))
	}
	return int(w), int(h), nil
}

// planesNV21 splits a contiguous NV21 buffer into its luma and chroma
// planes. The driver may pad rows, so the stride is derived from the
// buffer length instead of assumed equal to the width.
func planesNV21(data []byte, width, height int) []pixbuf.Plane {
	stride := width
	if total := len(data); total > width*height*3/2 {
		stride = total * 2 / (3 * height)
	}
	lumaLen := stride * height
	if lumaLen > len(data) {
		lumaLen = len(data)
	}
	return []pixbuf.Plane{
		{Data: data[:lumaLen], Stride: stride},
		{Data: data[lumaLen:], Stride: stride},
	}
}
