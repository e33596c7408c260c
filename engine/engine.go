// Package engine is the call boundary to the native zxing-cpp decoder.
//
// The engine signals its outcome as a raw string: the name of the format it
// decoded, NoBarcode when it ran cleanly but found nothing, or any other
// text describing an internal failure. An absent outcome (empty string) is
// treated the same as NoBarcode. The raw signal is translated by the reader
// and never reaches callers directly.
package engine

// NoBarcode is the reserved outcome for "no decodable symbol found". Kept
// in sync with the native wrapper.
const NoBarcode = "NONE"

// Request carries one decode invocation across the boundary. Pix is a
// single-channel intensity image; the crop fields select the sub-region to
// search and the rotation is applied engine-side.
type Request struct {
	Pix        []byte
	Width      int
	Height     int
	Stride     int
	Left       int
	Top        int
	CropWidth  int
	CropHeight int
	Rotation   int
	// Formats is the comma joined list of accepted format names, empty for
	// no restriction.
	Formats   string
	TryHarder bool
	TryRotate bool
}

// Payload receives the decoded text and timing the engine produces
// alongside the raw outcome.
type Payload struct {
	Text   string
	TimeMS int64
}

// Func invokes the engine exactly once, synchronously, filling out and
// returning the raw outcome string. The production implementation is
// Native; tests substitute doubles.
type Func func(req *Request, out *Payload) string
