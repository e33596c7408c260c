// Package capture streams NV21 frames from a V4L2 camera device.
package capture

import (
	"sync/atomic"

	"github.com/blackjack/webcam"
	"github.com/pkg/errors"

	"github.com/ufocruz/zxing-cpp/pixbuf"
)

// Camera is one streaming session. Frames arrive on Stream until Close is
// called or the device fails; check Err once the stream ends. Every frame
// borrows driver memory: its Release must be called to hand the memory
// back, or the driver runs out of buffers.
type Camera struct {
	frames  chan *pixbuf.SourceFrame
	stopped atomic.Bool
	done    chan struct{}
	err     error
}

// Open starts streaming from the given device path.
func Open(device string) *Camera {
	c := &Camera{
		frames: make(chan *pixbuf.SourceFrame, 1),
		done:   make(chan struct{}),
	}
	go func() {
		if err := c.pump(device); err != nil {
			c.err = err
		}
		close(c.frames)
		close(c.done)
	}()
	return c
}

// Stream returns the frame channel. It is closed when the session ends.
func (c *Camera) Stream() <-chan *pixbuf.SourceFrame {
	return c.frames
}

// Close stops the session and waits for the device to be released.
func (c *Camera) Close() {
	c.stopped.Store(true)
	<-c.done
}

// Err reports why the stream ended, nil after a clean Close.
func (c *Camera) Err() error {
	return c.err
}

func (c *Camera) pump(device string) error {
	cam, err := webcam.Open(device)
	if err != nil {
		return errors.Wrap(err, "can not open device")
	}
	defer cam.Close()

	width, height, err := negotiate(cam)
	if err != nil {
		return err
	}

	if err := cam.StartStreaming(); err != nil {
		return errors.Wrap(err, "can not start streaming")
	}

	for !c.stopped.Load() {
		err := cam.WaitForFrame(1)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			continue
		default:
			return errors.Wrap(err, "frame wait failed")
		}

		data, index, err := cam.GetFrame()
		if err != nil {
			return errors.Wrap(err, "read frame failed")
		}

		// Consumer still busy with the previous frame, drop this one.
		if len(c.frames) > 0 {
			if err := cam.ReleaseFrame(index); err != nil {
				return errors.Wrap(err, "release frame failed")
			}
			continue
		}

		frame := &pixbuf.SourceFrame{
			Width:   width,
			Height:  height,
			Format:  pixbuf.FormatNV21,
			Planes:  planesNV21(data, width, height),
			Release: func() { _ = cam.ReleaseFrame(index) },
		}

		select {
		case c.frames <- frame:
		default:
			_ = cam.ReleaseFrame(index)
		}
	}

	return nil
}
