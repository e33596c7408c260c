package zxingcpp

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ufocruz/zxing-cpp/barcode"
	"github.com/ufocruz/zxing-cpp/capture"
	"github.com/ufocruz/zxing-cpp/pixbuf"
)

// ScanOptions configure a live camera scan.
type ScanOptions struct {
	// Device is the V4L2 device path, e.g. /dev/video0.
	Device string
	// Timeout bounds the whole scan. Zero means 10 seconds.
	Timeout time.Duration
	// TryInvert retries each undecoded frame once with inverted
	// intensities before moving on to the next frame.
	TryInvert bool
	Barcode   barcode.Options
}

const defaultScanTimeout = 10 * time.Second

// ErrScanTimeout is returned when the timeout expires with no symbol found.
var ErrScanTimeout = errors.New("no barcode found before timeout")

// Scan streams frames from the camera and decodes them one by one until a
// symbol is found, the timeout expires, or a decode fails.
func Scan(opt *ScanOptions) (*barcode.Result, error) {
	reader := NewReader(opt.Barcode)

	cam := capture.Open(opt.Device)
	defer cam.Close()

	timeout := opt.Timeout
	if timeout == 0 {
		timeout = defaultScanTimeout
	}
	deadline := time.After(timeout)

	for {
		select {
		case <-deadline:
			return nil, ErrScanTimeout

		case frame, ok := <-cam.Stream():
			if !ok {
				if err := cam.Err(); err != nil {
					return nil, err
				}
				return nil, errors.New("camera stream ended")
			}
			res, err := reader.scanFrame(frame, opt.TryInvert)
			if err != nil {
				return nil, err
			}
			if res != nil {
				return res, nil
			}
		}
	}
}

// scanFrame decodes one live frame, retrying once on an inverted copy when
// asked. The retry is this layer's policy; Decode itself never retries.
func (r *Reader) scanFrame(frame *pixbuf.SourceFrame, tryInvert bool) (*barcode.Result, error) {
	buf, err := r.mgr.Acquire(frame)
	if err != nil {
		return nil, err
	}
	res, err := r.Decode(buf, frame.Crop, frame.Rotation)
	if err != nil || res != nil || !tryInvert {
		return res, err
	}
	return r.Decode(pixbuf.Invert(buf), frame.Crop, frame.Rotation)
}
