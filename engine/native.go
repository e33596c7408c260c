package engine

/*
#cgo LDFLAGS: -lzxing_c

#include <stdlib.h>

// Implemented by the zxing-cpp C wrapper library. Returns the decoded
// format name, "NONE" when no symbol was found, or an error description.
// The returned string stays valid until the next call on the same thread;
// *text is malloc'd and owned by the caller.
extern const char *zxing_read_barcode(
	const unsigned char *pix, int width, int height, int stride,
	int left, int top, int crop_width, int crop_height, int rotation,
	const char *formats, int try_harder, int try_rotate,
	char **text, int *time_ms);
*/
import "C"

import "unsafe"

// Native calls the linked zxing-cpp wrapper. It blocks until the engine
// returns; there is no cancellation at this layer.
func Native(req *Request, out *Payload) string {
	if len(req.Pix) == 0 {
		return NoBarcode
	}

	formats := C.CString(req.Formats)
	defer C.free(unsafe.Pointer(formats))

	var text *C.char
	var timeMS C.int
	raw := C.zxing_read_barcode(
		(*C.uchar)(unsafe.Pointer(&req.Pix[0])),
		C.int(req.Width), C.int(req.Height), C.int(req.Stride),
		C.int(req.Left), C.int(req.Top), C.int(req.CropWidth), C.int(req.CropHeight),
		C.int(req.Rotation),
		formats, cbool(req.TryHarder), cbool(req.TryRotate),
		&text, &timeMS,
	)

	if text != nil {
		out.Text = C.GoString(text)
		C.free(unsafe.Pointer(text))
	}
	out.TimeMS = int64(timeMS)

	if raw == nil {
		return ""
	}
	return C.GoString(raw)
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
